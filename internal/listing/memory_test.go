// AngelaMos | 2026
// memory_test.go

package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/locagram/locagram-api/internal/core"
)

func seedListing(t *testing.T, repo *MemoryRepository, l Listing) *Listing {
	t.Helper()

	if l.Status == "" {
		l.Status = StatusActive
	}
	if l.Availability == "" {
		l.Availability = AvailabilityImmediate
	}
	if l.UserID == "" {
		l.UserID = "owner-1"
	}

	if err := repo.Create(context.Background(), &l); err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return &l
}

func TestMemoryRepositoryListFilters(t *testing.T) {
	repo := NewMemoryRepository()

	seedListing(t, repo, Listing{
		Title:    "Appartement Haie Vive",
		Price:    150000,
		Location: "Cotonou, Haie Vive",
		City:     "Cotonou",
		Category: "appartement",
	})
	seedListing(t, repo, Listing{
		Title:    "Villa Fidjrossè",
		Price:    450000,
		Location: "Fidjrossè plage",
		City:     "Cotonou",
		Category: "villa",
	})
	seedListing(t, repo, Listing{
		Title:    "Chambre Porto-Novo",
		Price:    40000,
		Location: "Quartier Ouando",
		City:     "Porto-Novo",
		Category: "chambre",
	})

	maxPrice := func(v int64) *int64 { return &v }

	tests := []struct {
		name       string
		filter     Filter
		wantTitles []string
	}{
		{
			name:       "no filter returns everything in insertion order",
			filter:     Filter{},
			wantTitles: []string{"Appartement Haie Vive", "Villa Fidjrossè", "Chambre Porto-Novo"},
		},
		{
			name:       "location matches substring of location field",
			filter:     Filter{Location: "haie"},
			wantTitles: []string{"Appartement Haie Vive"},
		},
		{
			name:       "location matches city when location field differs",
			filter:     Filter{Location: "coton"},
			wantTitles: []string{"Appartement Haie Vive", "Villa Fidjrossè"},
		},
		{
			name:       "location is case-insensitive",
			filter:     Filter{Location: "PORTO"},
			wantTitles: []string{"Chambre Porto-Novo"},
		},
		{
			name:       "type matches category exactly",
			filter:     Filter{Type: "villa"},
			wantTitles: []string{"Villa Fidjrossè"},
		},
		{
			name:       "max price is inclusive",
			filter:     Filter{MaxPrice: maxPrice(150000)},
			wantTitles: []string{"Appartement Haie Vive", "Chambre Porto-Novo"},
		},
		{
			name:       "filters combine with AND",
			filter:     Filter{Location: "cotonou", MaxPrice: maxPrice(200000)},
			wantTitles: []string{"Appartement Haie Vive"},
		},
		{
			name:       "no match yields empty result",
			filter:     Filter{Type: "bureau"},
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if got == nil {
				t.Fatal("List() returned nil slice")
			}
			if len(got) != len(tt.wantTitles) {
				t.Fatalf("List() returned %d listings, want %d",
					len(got), len(tt.wantTitles))
			}
			for i, want := range tt.wantTitles {
				if got[i].Title != want {
					t.Errorf("List()[%d].Title = %q, want %q",
						i, got[i].Title, want)
				}
			}
		})
	}
}

func TestMemoryRepositoryStatusFilter(t *testing.T) {
	repo := NewMemoryRepository()

	seedListing(t, repo, Listing{Title: "active one", Category: "villa"})
	sold := seedListing(t, repo, Listing{
		Title:    "sold one",
		Category: "villa",
		Status:   StatusSold,
	})

	got, err := repo.List(context.Background(), Filter{Status: StatusActive})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "active one" {
		t.Fatalf("List(status=active) = %+v, want only the active listing", got)
	}

	got, err = repo.List(context.Background(), Filter{Status: StatusSold})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != sold.ID {
		t.Fatalf("List(status=sold) = %+v, want only the sold listing", got)
	}
}

func TestMemoryRepositoryCountActiveByOwner(t *testing.T) {
	repo := NewMemoryRepository()

	seedListing(t, repo, Listing{Title: "a", UserID: "u1", Category: "villa"})
	seedListing(t, repo, Listing{Title: "b", UserID: "u1", Category: "villa"})
	seedListing(t, repo, Listing{
		Title:    "c",
		UserID:   "u1",
		Category: "villa",
		Status:   StatusInactive,
	})
	seedListing(t, repo, Listing{Title: "d", UserID: "u2", Category: "villa"})

	count, err := repo.CountActiveByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("CountActiveByOwner() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountActiveByOwner(u1) = %d, want 2 (inactive excluded)", count)
	}

	count, err = repo.CountActiveByOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("CountActiveByOwner() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountActiveByOwner(nobody) = %d, want 0", count)
	}
}

func TestMemoryRepositoryGetByID(t *testing.T) {
	repo := NewMemoryRepository()
	created := seedListing(t, repo, Listing{Title: "a", Category: "villa"})

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "a" {
		t.Errorf("GetByID().Title = %q, want %q", got.Title, "a")
	}

	// Mutating the returned copy must not leak into the store.
	got.Title = "mutated"
	again, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if again.Title != "a" {
		t.Error("GetByID() returned a reference to stored state")
	}

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryCounters(t *testing.T) {
	repo := NewMemoryRepository()
	created := seedListing(t, repo, Listing{Title: "a", Category: "villa"})

	for i := 0; i < 3; i++ {
		if err := repo.IncrementViews(context.Background(), created.ID); err != nil {
			t.Fatalf("IncrementViews() error = %v", err)
		}
	}
	if err := repo.IncrementContacts(context.Background(), created.ID); err != nil {
		t.Fatalf("IncrementContacts() error = %v", err)
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Views != 3 {
		t.Errorf("Views = %d, want 3", got.Views)
	}
	if got.Contacts != 1 {
		t.Errorf("Contacts = %d, want 1", got.Contacts)
	}
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	created := seedListing(t, repo, Listing{Title: "a", Category: "villa"})

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.GetByID(context.Background(), created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	got, err := repo.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() after delete returned %d listings, want 0", len(got))
	}

	if err := repo.Delete(context.Background(), created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryFeatured(t *testing.T) {
	repo := NewMemoryRepository()

	a := seedListing(t, repo, Listing{Title: "a", Category: "villa"})
	seedListing(t, repo, Listing{Title: "b", Category: "villa"})

	if err := repo.SetFeatured(context.Background(), a.ID, true); err != nil {
		t.Fatalf("SetFeatured() error = %v", err)
	}

	got, err := repo.ListFeatured(context.Background())
	if err != nil {
		t.Fatalf("ListFeatured() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("ListFeatured() = %+v, want only listing a", got)
	}
}
