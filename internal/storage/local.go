// AngelaMos | 2026
// local.go

package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores objects on the local filesystem under a base directory
// and serves them from a static file route. Keys may contain forward
// slashes for namespacing; path escapes are rejected.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &Local{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (l *Local) Put(
	ctx context.Context,
	key, contentType string,
	r io.Reader,
	size int64,
) (string, error) {
	path, err := l.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("store object %s: %w", key, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("store object %s: %w", key, err)
	}

	written, err := io.Copy(f, io.LimitReader(r, size))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path) //nolint:errcheck // cleanup of partial write
		return "", fmt.Errorf("store object %s: %w", key, err)
	}
	if written != size {
		_ = os.Remove(path) //nolint:errcheck // cleanup of partial write
		return "", fmt.Errorf("store object %s: short write", key)
	}

	return l.baseURL + "/" + key, nil
}

func (l *Local) Remove(ctx context.Context, key string) error {
	path, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove object %s: %w", key, err)
	}

	return nil
}

func (l *Local) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") ||
		filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object key %q", key)
	}

	return filepath.Join(l.dir, cleaned), nil
}
