// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/locagram/locagram-api/internal/core"
	"github.com/locagram/locagram-api/internal/quota"
)

type mockRepository struct {
	Repository

	getByIDFn          func(ctx context.Context, id string) (*User, error)
	updateFn           func(ctx context.Context, user *User) error
	setListingsCountFn func(ctx context.Context, id string, delta int) error
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) Update(ctx context.Context, user *User) error {
	return m.updateFn(ctx, user)
}

func (m *mockRepository) SetListingsCount(
	ctx context.Context,
	id string,
	delta int,
) error {
	return m.setListingsCountFn(ctx, id, delta)
}

func activeUser() *User {
	return &User{
		ID:           "u1",
		Email:        "ayite@example.bj",
		Name:         "Ayité",
		Role:         RoleDemarcheur,
		Status:       StatusActive,
		Subscription: quota.SubscriptionTrial,
	}
}

func TestUpdateUserCategories(t *testing.T) {
	var saved *User
	svc := NewService(&mockRepository{
		getByIDFn: func(ctx context.Context, id string) (*User, error) {
			return activeUser(), nil
		},
		updateFn: func(ctx context.Context, user *User) error {
			saved = user
			return nil
		},
	})

	got, err := svc.UpdateUserCategories(context.Background(), "u1", []string{
		" Villa ",
		"appartement",
		"VILLA",
		"",
		"chambre",
	})
	if err != nil {
		t.Fatalf("UpdateUserCategories() error = %v", err)
	}

	want := []string{"villa", "appartement", "chambre"}
	if len(got.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", got.Categories, want)
	}
	for i, w := range want {
		if got.Categories[i] != w {
			t.Errorf("categories[%d] = %q, want %q", i, got.Categories[i], w)
		}
	}
	if saved == nil {
		t.Fatal("repository Update was never called")
	}
}

func TestUpdateUserStatusValidation(t *testing.T) {
	svc := NewService(&mockRepository{
		getByIDFn: func(ctx context.Context, id string) (*User, error) {
			return activeUser(), nil
		},
		updateFn: func(ctx context.Context, user *User) error {
			return nil
		},
	})

	for _, status := range []string{
		StatusActive, StatusInactive, StatusPending, StatusSuspended,
	} {
		if _, err := svc.UpdateUserStatus(context.Background(), "u1", status); err != nil {
			t.Errorf("UpdateUserStatus(%q) error = %v", status, err)
		}
	}

	_, err := svc.UpdateUserStatus(context.Background(), "u1", "banned")
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("UpdateUserStatus(banned) error = %v, want ErrInvalidInput", err)
	}
}

func TestUpdateUserSubscriptionValidation(t *testing.T) {
	svc := NewService(&mockRepository{
		getByIDFn: func(ctx context.Context, id string) (*User, error) {
			return activeUser(), nil
		},
		updateFn: func(ctx context.Context, user *User) error {
			return nil
		},
	})

	if _, err := svc.UpdateUserSubscription(
		context.Background(), "u1", quota.SubscriptionPremium,
	); err != nil {
		t.Errorf("UpdateUserSubscription(premium) error = %v", err)
	}

	_, err := svc.UpdateUserSubscription(context.Background(), "u1", "gold")
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("UpdateUserSubscription(gold) error = %v, want ErrInvalidInput", err)
	}
}

func TestListingCounters(t *testing.T) {
	var deltas []int
	svc := NewService(&mockRepository{
		setListingsCountFn: func(ctx context.Context, id string, delta int) error {
			deltas = append(deltas, delta)
			return nil
		},
	})

	if err := svc.ListingCreated(context.Background(), "u1"); err != nil {
		t.Fatalf("ListingCreated() error = %v", err)
	}
	if err := svc.ListingDeleted(context.Background(), "u1"); err != nil {
		t.Fatalf("ListingDeleted() error = %v", err)
	}

	if len(deltas) != 2 || deltas[0] != 1 || deltas[1] != -1 {
		t.Errorf("deltas = %v, want [1 -1]", deltas)
	}
}
