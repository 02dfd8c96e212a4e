// AngelaMos | 2026
// service_test.go

package category

import (
	"context"
	"errors"
	"testing"

	"github.com/locagram/locagram-api/internal/core"
)

type mockRepository struct {
	createFn          func(ctx context.Context, c *Category) error
	getByIDFn         func(ctx context.Context, id string) (*Category, error)
	getBySlugFn       func(ctx context.Context, slug string) (*Category, error)
	listFn            func(ctx context.Context, activeOnly bool) ([]Category, error)
	nameOrSlugTakenFn func(ctx context.Context, name, slug, excludeID string) (bool, error)
	renameFn          func(ctx context.Context, id, name, slug string) error
	updateFn          func(ctx context.Context, c *Category) error
	deleteFn          func(ctx context.Context, id string) error
}

func (m *mockRepository) Create(ctx context.Context, c *Category) error {
	return m.createFn(ctx, c)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	return m.getBySlugFn(ctx, slug)
}

func (m *mockRepository) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	return m.listFn(ctx, activeOnly)
}

func (m *mockRepository) NameOrSlugTaken(
	ctx context.Context,
	name, slug, excludeID string,
) (bool, error) {
	return m.nameOrSlugTakenFn(ctx, name, slug, excludeID)
}

func (m *mockRepository) Rename(ctx context.Context, id, name, slug string) error {
	return m.renameFn(ctx, id, name, slug)
}

func (m *mockRepository) Update(ctx context.Context, c *Category) error {
	return m.updateFn(ctx, c)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func TestServiceCreate(t *testing.T) {
	t.Run("derives slug and persists", func(t *testing.T) {
		var stored *Category
		repo := &mockRepository{
			nameOrSlugTakenFn: func(ctx context.Context, name, slug, excludeID string) (bool, error) {
				return false, nil
			},
			createFn: func(ctx context.Context, c *Category) error {
				stored = c
				return nil
			},
		}

		svc := NewService(repo)
		got, err := svc.Create(context.Background(), CreateCategoryRequest{
			Name: "Résidence Étudiante",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.Slug != "residence-etudiante" {
			t.Errorf("slug = %q, want %q", got.Slug, "residence-etudiante")
		}
		if got.ID == "" {
			t.Error("Create() did not assign an ID")
		}
		if !got.IsActive {
			t.Error("new category should be active")
		}
		if stored == nil {
			t.Fatal("Create() never reached the repository")
		}
	})

	t.Run("rejects a taken name distinctly", func(t *testing.T) {
		repo := &mockRepository{
			nameOrSlugTakenFn: func(ctx context.Context, name, slug, excludeID string) (bool, error) {
				return true, nil
			},
		}

		svc := NewService(repo)
		_, err := svc.Create(context.Background(), CreateCategoryRequest{
			Name: "Maison",
		})
		if !errors.Is(err, core.ErrDuplicateKey) {
			t.Fatalf("Create() error = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("rejects a name that slugs to nothing", func(t *testing.T) {
		svc := NewService(&mockRepository{})

		_, err := svc.Create(context.Background(), CreateCategoryRequest{
			Name: "&&&",
		})
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("Create() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("maps a unique-index race to a duplicate error", func(t *testing.T) {
		repo := &mockRepository{
			nameOrSlugTakenFn: func(ctx context.Context, name, slug, excludeID string) (bool, error) {
				return false, nil
			},
			createFn: func(ctx context.Context, c *Category) error {
				return core.ErrDuplicateKey
			},
		}

		svc := NewService(repo)
		_, err := svc.Create(context.Background(), CreateCategoryRequest{
			Name: "Maison",
		})
		if !errors.Is(err, core.ErrDuplicateKey) {
			t.Fatalf("Create() error = %v, want ErrDuplicateKey", err)
		}
	})
}

func TestServiceUpdateRename(t *testing.T) {
	existing := Category{
		ID:       "c1",
		Slug:     "maison",
		Name:     "Maison",
		IsActive: true,
	}

	t.Run("rename recomputes the slug through the atomic path", func(t *testing.T) {
		var renamedTo, renamedSlug string
		repo := &mockRepository{
			getByIDFn: func(ctx context.Context, id string) (*Category, error) {
				c := existing
				return &c, nil
			},
			renameFn: func(ctx context.Context, id, name, slug string) error {
				renamedTo, renamedSlug = name, slug
				return nil
			},
		}

		svc := NewService(repo)
		name := "Maison Moderne"
		got, err := svc.Update(context.Background(), "c1", UpdateCategoryRequest{
			Name: &name,
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if renamedTo != "Maison Moderne" || renamedSlug != "maison-moderne" {
			t.Errorf("Rename called with (%q, %q), want (%q, %q)",
				renamedTo, renamedSlug, "Maison Moderne", "maison-moderne")
		}
		if got.Slug != "maison-moderne" {
			t.Errorf("slug = %q, want %q", got.Slug, "maison-moderne")
		}
	})

	t.Run("rename onto a taken name surfaces a duplicate error", func(t *testing.T) {
		repo := &mockRepository{
			getByIDFn: func(ctx context.Context, id string) (*Category, error) {
				c := existing
				return &c, nil
			},
			renameFn: func(ctx context.Context, id, name, slug string) error {
				return core.ErrDuplicateKey
			},
		}

		svc := NewService(repo)
		name := "Villa"
		_, err := svc.Update(context.Background(), "c1", UpdateCategoryRequest{
			Name: &name,
		})
		if !errors.Is(err, core.ErrDuplicateKey) {
			t.Fatalf("Update() error = %v, want ErrDuplicateKey", err)
		}
	})

	t.Run("unchanged name skips the rename path", func(t *testing.T) {
		repo := &mockRepository{
			getByIDFn: func(ctx context.Context, id string) (*Category, error) {
				c := existing
				return &c, nil
			},
			renameFn: func(ctx context.Context, id, name, slug string) error {
				t.Error("Rename should not run for an unchanged name")
				return nil
			},
			updateFn: func(ctx context.Context, c *Category) error {
				return nil
			},
		}

		svc := NewService(repo)
		name := "Maison"
		active := false
		_, err := svc.Update(context.Background(), "c1", UpdateCategoryRequest{
			Name:     &name,
			IsActive: &active,
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})
}

func TestServiceListDeduplicates(t *testing.T) {
	repo := &mockRepository{
		listFn: func(ctx context.Context, activeOnly bool) ([]Category, error) {
			return []Category{
				{ID: "1", Name: "Maison"},
				{ID: "2", Name: "maison "},
				{ID: "3", Name: "Villa"},
			}, nil
		},
	}

	svc := NewService(repo)
	got, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d categories, want 2", len(got))
	}
	if got[0].Name != "Maison" || got[1].Name != "Villa" {
		t.Errorf("List() = %v, want Maison then Villa", got)
	}
}
