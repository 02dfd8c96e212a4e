// AngelaMos | 2026
// service_test.go

package zone

import (
	"testing"
)

func TestDeduplicate(t *testing.T) {
	input := []Zone{
		{ID: "1", Name: "Cotonou", Department: "Littoral"},
		{ID: "2", Name: "cotonou ", Department: "Littoral"},
		{ID: "3", Name: "Porto-Novo", Department: "Ouémé"},
		{ID: "4", Name: "Abomey-Calavi", Department: "Atlantique"},
		{ID: "5", Name: "PORTO-NOVO", Department: "Ouémé"},
	}

	got := Deduplicate(input)

	wantNames := []string{"Cotonou", "Porto-Novo", "Abomey-Calavi"}
	if len(got) != len(wantNames) {
		t.Fatalf("Deduplicate() kept %d zones, want %d", len(got), len(wantNames))
	}
	for i, want := range wantNames {
		if got[i].Name != want {
			t.Errorf("Deduplicate()[%d].Name = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestDeduplicateEmpty(t *testing.T) {
	got := Deduplicate(nil)
	if got == nil {
		t.Fatal("Deduplicate(nil) returned nil slice")
	}
	if len(got) != 0 {
		t.Errorf("Deduplicate(nil) kept %d zones, want 0", len(got))
	}
}
