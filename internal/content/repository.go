// AngelaMos | 2026
// repository.go

package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/locagram/locagram-api/internal/core"
)

type Repository interface {
	CreateContactMessage(ctx context.Context, m *ContactMessage) error
	CreateSubscription(ctx context.Context, s *NewsletterSubscription) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateContactMessage(
	ctx context.Context,
	m *ContactMessage,
) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &m.CreatedAt, query,
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		m.Message,
	)
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *repository) CreateSubscription(
	ctx context.Context,
	s *NewsletterSubscription,
) error {
	query := `
		INSERT INTO newsletter_subscriptions (id, email)
		VALUES ($1, $2)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &s.CreatedAt, query, s.ID, s.Email)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create subscription: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create subscription: %w", err)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
