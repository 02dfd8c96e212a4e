// AngelaMos | 2026
// dedup_test.go

package category

import (
	"testing"
)

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name      string
		input     []Category
		wantNames []string
	}{
		{
			name: "first occurrence wins on case and whitespace",
			input: []Category{
				{ID: "1", Name: "Maison"},
				{ID: "2", Name: "maison "},
				{ID: "3", Name: "Villa"},
			},
			wantNames: []string{"Maison", "Villa"},
		},
		{
			name: "duplicate dropped regardless of id ordering",
			input: []Category{
				{ID: "9", Name: "Bureau"},
				{ID: "1", Name: "BUREAU"},
			},
			wantNames: []string{"Bureau"},
		},
		{
			name: "relative order preserved",
			input: []Category{
				{ID: "1", Name: "Villa"},
				{ID: "2", Name: "Appartement"},
				{ID: "3", Name: "villa"},
				{ID: "4", Name: "Chambre"},
			},
			wantNames: []string{"Villa", "Appartement", "Chambre"},
		},
		{
			name:      "empty input yields empty output",
			input:     []Category{},
			wantNames: []string{},
		},
		{
			name: "no duplicates passes through",
			input: []Category{
				{ID: "1", Name: "Villa"},
				{ID: "2", Name: "Maison"},
			},
			wantNames: []string{"Villa", "Maison"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deduplicate(tt.input)
			if got == nil {
				t.Fatal("Deduplicate() returned nil slice")
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("Deduplicate() kept %d records, want %d",
					len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("Deduplicate()[%d].Name = %q, want %q",
						i, got[i].Name, want)
				}
			}
		})
	}
}
