// AngelaMos | 2026
// repository.go

package zone

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/locagram/locagram-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, z *Zone) error
	GetByID(ctx context.Context, id string) (*Zone, error)
	List(ctx context.Context, activeOnly bool) ([]Zone, error)
	Update(ctx context.Context, z *Zone) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const zoneColumns = `
	id, name, department, is_active, created_at, updated_at`

func (r *repository) Create(ctx context.Context, z *Zone) error {
	query := `
		INSERT INTO zones (id, name, department, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, z, query,
		z.ID,
		z.Name,
		z.Department,
		z.IsActive,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create zone: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create zone: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Zone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM zones
		WHERE id = $1`, zoneColumns)

	var z Zone
	err := r.db.GetContext(ctx, &z, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get zone: %w", core.ErrNotFound)
		}
		return nil, fmt.Errorf("get zone: %w", err)
	}

	return &z, nil
}

func (r *repository) List(
	ctx context.Context,
	activeOnly bool,
) ([]Zone, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM zones`, zoneColumns)
	if activeOnly {
		query += `
		WHERE is_active = TRUE`
	}
	query += `
		ORDER BY department ASC, name ASC`

	zones := []Zone{}
	if err := r.db.SelectContext(ctx, &zones, query); err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	return zones, nil
}

func (r *repository) Update(ctx context.Context, z *Zone) error {
	query := `
		UPDATE zones
		SET name = $2, department = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &z.UpdatedAt, query,
		z.ID,
		z.Name,
		z.Department,
		z.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update zone: %w", core.ErrNotFound)
		}
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update zone: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update zone: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete zone: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
