// AngelaMos | 2026
// service.go

package zone

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/locagram/locagram-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns zones with duplicate names collapsed, first seen wins.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]Zone, error) {
	zones, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	return Deduplicate(zones), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Zone, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateZoneRequest,
) (*Zone, error) {
	z := &Zone{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(req.Name),
		Department: strings.TrimSpace(req.Department),
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, z); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("zone name")
		}
		return nil, err
	}

	return z, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateZoneRequest,
) (*Zone, error) {
	z, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		z.Name = strings.TrimSpace(*req.Name)
	}
	if req.Department != nil {
		z.Department = strings.TrimSpace(*req.Department)
	}
	if req.IsActive != nil {
		z.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, z); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("zone name")
		}
		return nil, err
	}

	return z, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Deduplicate keeps the first zone per trimmed, lowercased name and
// preserves the relative order of survivors.
func Deduplicate(zones []Zone) []Zone {
	seen := make(map[string]struct{}, len(zones))
	result := make([]Zone, 0, len(zones))

	for _, z := range zones {
		key := strings.ToLower(strings.TrimSpace(z.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, z)
	}

	return result
}
