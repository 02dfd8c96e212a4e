// AngelaMos | 2026
// validate_test.go

package storage

import (
	"errors"
	"testing"

	"github.com/locagram/locagram-api/internal/config"
	"github.com/locagram/locagram-api/internal/core"
)

func testValidator() *ImageValidator {
	return NewImageValidator(config.UploadConfig{
		MaxSizeBytes: 5 * 1024 * 1024,
		AllowedTypes: []string{"jpeg", "jpg", "png", "gif", "webp", "bmp", "tiff"},
	})
}

func TestImageValidatorValidate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantType string
		wantErr  bool
	}{
		{"jpg accepted", "photo.jpg", 1024, "image/jpeg", false},
		{"jpeg accepted", "photo.jpeg", 1024, "image/jpeg", false},
		{"png accepted", "plan.PNG", 1024, "image/png", false},
		{"webp accepted", "vue.webp", 1024, "image/webp", false},
		{"at the size limit", "photo.jpg", 5 * 1024 * 1024, "image/jpeg", false},
		{"over the size limit", "photo.jpg", 5*1024*1024 + 1, "", true},
		{"empty file", "photo.jpg", 0, "", true},
		{"pdf rejected", "contrat.pdf", 1024, "", true},
		{"no extension", "photo", 1024, "", true},
		{"svg rejected", "icon.svg", 1024, "", true},
	}

	v := testValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.filename, tt.size)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate(%q, %d) = %q, want error",
						tt.filename, tt.size, got)
				}
				if !errors.Is(err, core.ErrInvalidInput) {
					t.Errorf("error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate(%q, %d) error = %v", tt.filename, tt.size, err)
			}
			if got != tt.wantType {
				t.Errorf("content type = %q, want %q", got, tt.wantType)
			}
		})
	}
}
