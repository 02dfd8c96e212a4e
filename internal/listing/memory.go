// AngelaMos | 2026
// memory.go

package listing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/locagram/locagram-api/internal/core"
)

// MemoryRepository keeps listings in insertion order in process memory.
// It backs the demo deployment and the tests; it honors the same filter
// contract as the Postgres repository.
type MemoryRepository struct {
	mu       sync.RWMutex
	listings []*Listing
	byID     map[string]*Listing
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]*Listing),
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Create(ctx context.Context, l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		l.ID = ulid.Make().String()
	}

	if _, exists := r.byID[l.ID]; exists {
		return fmt.Errorf("create listing: %w", core.ErrDuplicateKey)
	}

	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.Images == nil {
		l.Images = core.StringList{}
	}

	stored := *l
	r.listings = append(r.listings, &stored)
	r.byID[stored.ID] = &stored

	return nil
}

func (r *MemoryRepository) GetByID(
	ctx context.Context,
	id string,
) (*Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("get listing: %w", core.ErrNotFound)
	}

	copied := *l
	return &copied, nil
}

func (r *MemoryRepository) List(
	ctx context.Context,
	filter Filter,
) ([]Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []Listing{}
	for _, l := range r.listings {
		if !matches(l, filter) {
			continue
		}
		result = append(result, *l)
	}

	if filter.NewestFirst {
		// Stable sort so equal timestamps keep insertion order.
		sortNewestFirst(result)
	}

	return result, nil
}

func matches(l *Listing, filter Filter) bool {
	if filter.Location != "" {
		needle := strings.ToLower(filter.Location)
		inLocation := strings.Contains(strings.ToLower(l.Location), needle)
		inCity := strings.Contains(strings.ToLower(l.City), needle)
		if !inLocation && !inCity {
			return false
		}
	}

	if filter.Type != "" && l.Category != filter.Type {
		return false
	}

	if filter.MaxPrice != nil && l.Price > *filter.MaxPrice {
		return false
	}

	if filter.Status != "" && l.Status != filter.Status {
		return false
	}

	return true
}

func sortNewestFirst(listings []Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}

func (r *MemoryRepository) ListFeatured(
	ctx context.Context,
) ([]Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []Listing{}
	for _, l := range r.listings {
		if l.IsFeatured {
			result = append(result, *l)
		}
	}

	return result, nil
}

func (r *MemoryRepository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []Listing{}
	for _, l := range r.listings {
		if l.UserID == userID {
			result = append(result, *l)
		}
	}

	sortNewestFirst(result)
	return result, nil
}

func (r *MemoryRepository) CountActiveByOwner(
	ctx context.Context,
	userID string,
) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, l := range r.listings {
		if l.UserID == userID && l.Status == StatusActive {
			count++
		}
	}

	return count, nil
}

func (r *MemoryRepository) Update(ctx context.Context, l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[l.ID]
	if !ok {
		return fmt.Errorf("update listing: %w", core.ErrNotFound)
	}

	updated := *l
	updated.CreatedAt = stored.CreatedAt
	updated.Views = stored.Views
	updated.Contacts = stored.Contacts
	updated.UpdatedAt = time.Now()

	*stored = updated
	l.UpdatedAt = updated.UpdatedAt

	return nil
}

func (r *MemoryRepository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("update listing status: %w", core.ErrNotFound)
	}

	stored.Status = status
	stored.UpdatedAt = time.Now()

	return nil
}

func (r *MemoryRepository) SetFeatured(
	ctx context.Context,
	id string,
	featured bool,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("set listing featured: %w", core.ErrNotFound)
	}

	stored.IsFeatured = featured
	stored.UpdatedAt = time.Now()

	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return fmt.Errorf("delete listing: %w", core.ErrNotFound)
	}

	delete(r.byID, id)
	for i, l := range r.listings {
		if l.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			break
		}
	}

	return nil
}

func (r *MemoryRepository) IncrementViews(
	ctx context.Context,
	id string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.byID[id]; ok {
		stored.Views++
	}

	return nil
}

func (r *MemoryRepository) IncrementContacts(
	ctx context.Context,
	id string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.byID[id]; ok {
		stored.Contacts++
	}

	return nil
}
