// AngelaMos | 2026
// validate.go

package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/locagram/locagram-api/internal/config"
	"github.com/locagram/locagram-api/internal/core"
)

// extToContentType maps accepted image extensions to the content type
// stored alongside the object.
var extToContentType = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// ImageValidator enforces the upload constraints on listing images:
// extension allow-list and a per-file size ceiling.
type ImageValidator struct {
	allowed map[string]struct{}
	maxSize int64
}

func NewImageValidator(cfg config.UploadConfig) *ImageValidator {
	allowed := make(map[string]struct{}, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[strings.ToLower(t)] = struct{}{}
	}

	return &ImageValidator{
		allowed: allowed,
		maxSize: cfg.MaxSizeBytes,
	}
}

// Validate checks a candidate upload by filename and declared size and
// returns the content type to store it under.
func (v *ImageValidator) Validate(filename string, size int64) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return "", core.BadRequestError("file has no extension")
	}

	if _, ok := v.allowed[ext]; ok {
		if ct, known := extToContentType[ext]; known {
			if size <= 0 {
				return "", core.BadRequestError("file is empty")
			}
			if size > v.maxSize {
				return "", core.BadRequestError(fmt.Sprintf(
					"file exceeds the %d byte limit", v.maxSize))
			}
			return ct, nil
		}
	}

	return "", core.BadRequestError(fmt.Sprintf(
		"file type %q is not allowed", ext))
}

func (v *ImageValidator) MaxSize() int64 {
	return v.maxSize
}
