// AngelaMos | 2026
// slug_test.go

package category

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain word", "Maison", "maison"},
		{"diacritics stripped", "Résidence Étudiante", "residence-etudiante"},
		{"symbols collapse to one hyphen", "  A&B  ", "a-b"},
		{"multiple separators", "Terrain -- à   bâtir", "terrain-a-batir"},
		{"digits kept", "Studio 2 pièces", "studio-2-pieces"},
		{"no leading or trailing hyphen", "---Villa---", "villa"},
		{"only symbols", "&&&", ""},
		{"empty", "", ""},
		{"cedilla", "Reçu", "recu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Maison", "maison"},
		{"maison ", "maison"},
		{"  MAISON  ", "maison"},
		{"Résidence", "résidence"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
