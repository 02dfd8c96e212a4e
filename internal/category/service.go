// AngelaMos | 2026
// service.go

package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/locagram/locagram-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns categories for browsing. The result is passed through
// Deduplicate so a dirty store (duplicate names from concurrent writes
// or imports) never reaches clients twice.
func (s *Service) List(
	ctx context.Context,
	activeOnly bool,
) ([]Category, error) {
	categories, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	return Deduplicate(categories), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(
	ctx context.Context,
	slug string,
) (*Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create derives the slug from the name and rejects the record when
// either the slug or the case-insensitive name is already taken.
func (s *Service) Create(
	ctx context.Context,
	req CreateCategoryRequest,
) (*Category, error) {
	slug := Slugify(req.Name)
	if slug == "" {
		return nil, core.BadRequestError(
			"category name must contain at least one letter or digit")
	}

	taken, err := s.repo.NameOrSlugTaken(ctx, req.Name, slug, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, core.DuplicateError("category name")
	}

	c := &Category{
		ID:        uuid.New().String(),
		Slug:      slug,
		Name:      req.Name,
		Icon:      req.Icon,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("category name")
		}
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateCategoryRequest,
) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != c.Name {
		slug := Slugify(*req.Name)
		if slug == "" {
			return nil, core.BadRequestError(
				"category name must contain at least one letter or digit")
		}

		if err := s.repo.Rename(ctx, id, *req.Name, slug); err != nil {
			if errors.Is(err, core.ErrDuplicateKey) {
				return nil, core.DuplicateError("category name")
			}
			return nil, err
		}

		c.Name = *req.Name
		c.Slug = slug
	}

	changed := false
	if req.Icon != nil {
		c.Icon = *req.Icon
		changed = true
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
		changed = true
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
		changed = true
	}

	if changed {
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
