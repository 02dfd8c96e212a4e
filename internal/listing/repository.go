// AngelaMos | 2026
// repository.go

package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/locagram/locagram-api/internal/core"
)

// Filter narrows a listing query. Unset fields impose no constraint;
// set fields compose with AND. Location matches case-insensitively as a
// substring of either the listing's location or its city.
type Filter struct {
	Location string
	Type     string
	MaxPrice *int64
	Status   string

	// NewestFirst orders by creation time descending, ties broken by
	// insertion order. When false results come back in insertion order.
	NewestFirst bool
}

type Repository interface {
	Create(ctx context.Context, l *Listing) error
	GetByID(ctx context.Context, id string) (*Listing, error)
	List(ctx context.Context, filter Filter) ([]Listing, error)
	ListFeatured(ctx context.Context) ([]Listing, error)
	ListByOwner(ctx context.Context, userID string) ([]Listing, error)
	CountActiveByOwner(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, l *Listing) error
	UpdateStatus(ctx context.Context, id, status string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	IncrementContacts(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const listingColumns = `
	id, title, description, price, location, city, category, images,
	status, availability, negotiable, contact_phone, contact_email,
	user_id, land_area, is_furnished, is_featured, capacity,
	views, contacts, created_at, updated_at,
	wifi, balcony, pool, parking, security, air_conditioning,
	bedrooms, bathrooms, living_rooms, kitchens`

func (r *repository) Create(ctx context.Context, l *Listing) error {
	query := `
		INSERT INTO listings (
			id, title, description, price, location, city, category,
			images, status, availability, negotiable, contact_phone,
			contact_email, user_id, land_area, is_furnished, is_featured,
			capacity, wifi, balcony, pool, parking, security,
			air_conditioning, bedrooms, bathrooms, living_rooms, kitchens
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			$27, $28
		)
		RETURNING created_at, updated_at, views, contacts`

	err := r.db.GetContext(ctx, l, query,
		l.ID,
		l.Title,
		l.Description,
		l.Price,
		l.Location,
		l.City,
		l.Category,
		l.Images,
		l.Status,
		l.Availability,
		l.Negotiable,
		l.ContactPhone,
		l.ContactEmail,
		l.UserID,
		l.LandArea,
		l.IsFurnished,
		l.IsFeatured,
		l.Capacity,
		l.Wifi,
		l.Balcony,
		l.Pool,
		l.Parking,
		l.Security,
		l.AirConditioning,
		l.Bedrooms,
		l.Bathrooms,
		l.LivingRooms,
		l.Kitchens,
	)
	if err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE id = $1`, listingColumns)

	var l Listing
	err := r.db.GetContext(ctx, &l, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get listing: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return &l, nil
}

func (r *repository) List(
	ctx context.Context,
	filter Filter,
) ([]Listing, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(location ILIKE $%d OR city ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(filter.Location)+"%")
		argIdx++
	}

	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, filter.Type)
		argIdx++
	}

	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argIdx))
		args = append(args, *filter.MaxPrice)
		argIdx++
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// ULIDs sort by creation time, so ordering by id preserves
	// insertion order either way.
	orderClause := "ORDER BY id ASC"
	if filter.NewestFirst {
		orderClause = "ORDER BY created_at DESC, id ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		%s
		%s`, listingColumns, whereClause, orderClause)

	listings := []Listing{}
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	return listings, nil
}

func (r *repository) ListFeatured(ctx context.Context) ([]Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE is_featured = true
		ORDER BY id ASC`, listingColumns)

	listings := []Listing{}
	if err := r.db.SelectContext(ctx, &listings, query); err != nil {
		return nil, fmt.Errorf("list featured listings: %w", err)
	}

	return listings, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE user_id = $1
		ORDER BY created_at DESC, id ASC`, listingColumns)

	listings := []Listing{}
	if err := r.db.SelectContext(ctx, &listings, query, userID); err != nil {
		return nil, fmt.Errorf("list listings by owner: %w", err)
	}

	return listings, nil
}

// CountActiveByOwner counts only active listings: inactive, pending and
// sold listings do not consume quota.
func (r *repository) CountActiveByOwner(
	ctx context.Context,
	userID string,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM listings
		WHERE user_id = $1 AND status = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, StatusActive)
	if err != nil {
		return 0, fmt.Errorf("count active listings: %w", err)
	}

	return count, nil
}

func (r *repository) Update(ctx context.Context, l *Listing) error {
	query := `
		UPDATE listings
		SET title = $2, description = $3, price = $4, location = $5,
		    city = $6, images = $7, availability = $8, negotiable = $9,
		    contact_phone = $10, contact_email = $11, land_area = $12,
		    is_furnished = $13, capacity = $14, wifi = $15, balcony = $16,
		    pool = $17, parking = $18, security = $19,
		    air_conditioning = $20, bedrooms = $21, bathrooms = $22,
		    living_rooms = $23, kitchens = $24, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &l.UpdatedAt, query,
		l.ID,
		l.Title,
		l.Description,
		l.Price,
		l.Location,
		l.City,
		l.Images,
		l.Availability,
		l.Negotiable,
		l.ContactPhone,
		l.ContactEmail,
		l.LandArea,
		l.IsFurnished,
		l.Capacity,
		l.Wifi,
		l.Balcony,
		l.Pool,
		l.Parking,
		l.Security,
		l.AirConditioning,
		l.Bedrooms,
		l.Bathrooms,
		l.LivingRooms,
		l.Kitchens,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update listing: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	return nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	query := `
		UPDATE listings
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update listing status: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetFeatured(
	ctx context.Context,
	id string,
	featured bool,
) error {
	query := `
		UPDATE listings
		SET is_featured = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, featured)
	if err != nil {
		return fmt.Errorf("set listing featured: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set listing featured: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("set listing featured: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM listings WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete listing: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) IncrementViews(ctx context.Context, id string) error {
	query := `
		UPDATE listings
		SET views = views + 1
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}

	return nil
}

func (r *repository) IncrementContacts(ctx context.Context, id string) error {
	query := `
		UPDATE listings
		SET contacts = contacts + 1
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("increment contacts: %w", err)
	}

	return nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
