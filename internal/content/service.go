// AngelaMos | 2026
// service.go

package content

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

func (s *Service) SubmitContact(
	ctx context.Context,
	req ContactRequest,
) (*ContactMessage, error) {
	m := &ContactMessage{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.repo.CreateContactMessage(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Subscribe adds an email to the newsletter. Subscribing twice is not an
// error; the existing subscription simply stands.
func (s *Service) Subscribe(ctx context.Context, req NewsletterRequest) error {
	sub := &NewsletterSubscription{
		ID:    uuid.New().String(),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}

	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil
		}
		return err
	}

	return nil
}
