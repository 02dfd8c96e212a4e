// AngelaMos | 2026
// service_test.go

package content

import (
	"context"
	"testing"

	"github.com/locagram/locagram-api/internal/core"
)

type mockRepository struct {
	createContactFn      func(ctx context.Context, m *ContactMessage) error
	createSubscriptionFn func(ctx context.Context, s *NewsletterSubscription) error
}

func (m *mockRepository) CreateContactMessage(
	ctx context.Context,
	msg *ContactMessage,
) error {
	return m.createContactFn(ctx, msg)
}

func (m *mockRepository) CreateSubscription(
	ctx context.Context,
	s *NewsletterSubscription,
) error {
	return m.createSubscriptionFn(ctx, s)
}

func TestSubmitContactNormalizes(t *testing.T) {
	var stored *ContactMessage
	svc := NewService(&mockRepository{
		createContactFn: func(ctx context.Context, m *ContactMessage) error {
			stored = m
			return nil
		},
	})

	_, err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    "  Ayité  ",
		Email:   " Ayite@Example.BJ ",
		Phone:   "+22990000000",
		Message: "Je cherche un appartement à Cotonou.",
	})
	if err != nil {
		t.Fatalf("SubmitContact() error = %v", err)
	}
	if stored == nil {
		t.Fatal("SubmitContact() never reached the repository")
	}
	if stored.Name != "Ayité" {
		t.Errorf("name = %q, want trimmed", stored.Name)
	}
	if stored.Email != "ayite@example.bj" {
		t.Errorf("email = %q, want lowercased", stored.Email)
	}
	if stored.ID == "" {
		t.Error("no ID assigned")
	}
}

func TestSubscribeIdempotent(t *testing.T) {
	svc := NewService(&mockRepository{
		createSubscriptionFn: func(ctx context.Context, s *NewsletterSubscription) error {
			return core.ErrDuplicateKey
		},
	})

	err := svc.Subscribe(context.Background(), NewsletterRequest{
		Email: "deja@inscrit.bj",
	})
	if err != nil {
		t.Errorf("Subscribe() of existing email error = %v, want nil", err)
	}
}
