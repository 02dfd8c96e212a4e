// AngelaMos | 2026
// repository.go

package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/locagram/locagram-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context, activeOnly bool) ([]Category, error)
	NameOrSlugTaken(ctx context.Context, name, slug, excludeID string) (bool, error)
	Rename(ctx context.Context, id, name, slug string) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository takes the concrete pool rather than core.DBTX because
// the rename path opens its own transaction.
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const categoryColumns = `
	id, slug, name, icon, is_active, sort_order, created_at, updated_at`

func (r *repository) Create(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (id, slug, name, icon, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, c, query,
		c.ID,
		c.Slug,
		c.Name,
		c.Icon,
		c.IsActive,
		c.SortOrder,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create category: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE id = $1`, categoryColumns)

	var c Category
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get category: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &c, nil
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE slug = $1`, categoryColumns)

	var c Category
	err := r.db.GetContext(ctx, &c, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get category by slug: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("get category by slug: %w", err)
	}

	return &c, nil
}

func (r *repository) List(
	ctx context.Context,
	activeOnly bool,
) ([]Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories`, categoryColumns)
	if activeOnly {
		query += `
		WHERE is_active = TRUE`
	}
	query += `
		ORDER BY sort_order ASC, created_at ASC`

	categories := []Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *repository) NameOrSlugTaken(
	ctx context.Context,
	name, slug, excludeID string,
) (bool, error) {
	return nameOrSlugTaken(ctx, r.db, name, slug, excludeID)
}

// Rename re-validates name uniqueness and applies the update as one
// atomic unit, so a concurrent create of the same name cannot slip in
// between the check and the write.
func (r *repository) Rename(ctx context.Context, id, name, slug string) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		taken, err := nameOrSlugTaken(ctx, tx, name, slug, id)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("rename category: %w", core.ErrDuplicateKey)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE categories
			SET name = $2, slug = $3, updated_at = NOW()
			WHERE id = $1`, id, name, slug)
		if err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("rename category: %w", core.ErrDuplicateKey)
			}
			return fmt.Errorf("rename category: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("rename category: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("rename category: %w", core.ErrNotFound)
		}

		return nil
	})
}

func (r *repository) Update(ctx context.Context, c *Category) error {
	query := `
		UPDATE categories
		SET icon = $2, is_active = $3, sort_order = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &c.UpdatedAt, query,
		c.ID,
		c.Icon,
		c.IsActive,
		c.SortOrder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update category: %w", core.ErrNotFound)
		}
		return fmt.Errorf("update category: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete category: %w", core.ErrNotFound)
	}

	return nil
}

func nameOrSlugTaken(
	ctx context.Context,
	db core.DBTX,
	name, slug, excludeID string,
) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM categories
			WHERE (LOWER(TRIM(name)) = LOWER(TRIM($1)) OR slug = $2)
			  AND id <> $3
		)`

	var taken bool
	err := db.GetContext(ctx, &taken, query, name, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}

	return taken, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
