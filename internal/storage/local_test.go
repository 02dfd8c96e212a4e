// AngelaMos | 2026
// local_test.go

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalPut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}

	body := "fake image bytes"
	url, err := store.Put(
		context.Background(),
		"listings/01ABC.jpg",
		"image/jpeg",
		strings.NewReader(body),
		int64(len(body)),
	)
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if url != "http://localhost:8080/static/listings/01ABC.jpg" {
		t.Errorf("Put() url = %q", url)
	}

	stored, err := os.ReadFile(filepath.Join(dir, "listings", "01ABC.jpg"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(stored) != body {
		t.Errorf("stored bytes = %q, want %q", stored, body)
	}
}

func TestLocalPutRejectsPathEscape(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}

	keys := []string{"../outside.jpg", "/etc/passwd", "a/../../b.jpg", "."}
	for _, key := range keys {
		_, err := store.Put(
			context.Background(),
			key,
			"image/jpeg",
			strings.NewReader("x"),
			1,
		)
		if err == nil {
			t.Errorf("Put(%q) succeeded, want error", key)
		}
	}
}

func TestLocalRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}

	body := "x"
	if _, err := store.Put(
		context.Background(),
		"a.jpg",
		"image/jpeg",
		strings.NewReader(body),
		1,
	); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := store.Remove(context.Background(), "a.jpg"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); !os.IsNotExist(err) {
		t.Error("object still present after Remove()")
	}

	// Removing a missing key is not an error.
	if err := store.Remove(context.Background(), "a.jpg"); err != nil {
		t.Errorf("Remove() of missing key error = %v", err)
	}
}
