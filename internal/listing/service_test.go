// AngelaMos | 2026
// service_test.go

package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/locagram/locagram-api/internal/config"
	"github.com/locagram/locagram-api/internal/core"
	"github.com/locagram/locagram-api/internal/quota"
)

type mockProfiles struct {
	gateProfileFn func(ctx context.Context, userID string) (*quota.Profile, error)
	createdCalls  int
	deletedCalls  int
}

func (m *mockProfiles) GateProfile(
	ctx context.Context,
	userID string,
) (*quota.Profile, error) {
	return m.gateProfileFn(ctx, userID)
}

func (m *mockProfiles) ListingCreated(ctx context.Context, userID string) error {
	m.createdCalls++
	return nil
}

func (m *mockProfiles) ListingDeleted(ctx context.Context, userID string) error {
	m.deletedCalls++
	return nil
}

func newTestService(profile *quota.Profile) (*Service, *MemoryRepository, *mockProfiles) {
	repo := NewMemoryRepository()
	policy := quota.NewPolicy(config.QuotaConfig{
		Trial:   5,
		Basic:   10,
		Premium: quota.Unlimited,
	})
	gate := quota.NewGate(policy, "demo@locagram.bj")
	profiles := &mockProfiles{
		gateProfileFn: func(ctx context.Context, userID string) (*quota.Profile, error) {
			return profile, nil
		},
	}
	return NewService(repo, gate, profiles, 6), repo, profiles
}

func validCreateRequest(category string) CreateListingRequest {
	return CreateListingRequest{
		Title:        "Appartement deux chambres",
		Description:  "Appartement meublé proche du marché Dantokpa.",
		Price:        120000,
		Location:     "Cotonou, Gbegamey",
		City:         "Cotonou",
		Category:     category,
		Availability: AvailabilityImmediate,
		ContactPhone: "+22990000000",
	}
}

func seedActive(t *testing.T, repo *MemoryRepository, owner string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		l := Listing{
			Title:    "seeded",
			Category: "villa",
			Status:   StatusActive,
			UserID:   owner,
		}
		if err := repo.Create(context.Background(), &l); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func appErrMessage(t *testing.T, err error) string {
	t.Helper()
	var appErr *core.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *core.AppError", err)
	}
	return appErr.Message
}

func TestServiceCreate(t *testing.T) {
	activeTrial := &quota.Profile{
		UID:          "u1",
		Email:        "ayite@example.bj",
		Status:       "active",
		Subscription: quota.SubscriptionTrial,
		Categories:   []string{"villa", "appartement"},
	}

	t.Run("publishes under the quota with an authorized category", func(t *testing.T) {
		svc, repo, profiles := newTestService(activeTrial)
		seedActive(t, repo, "u1", 3)

		got, err := svc.Create(context.Background(), "u1", validCreateRequest("appartement"))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID == "" {
			t.Error("Create() did not assign an ID")
		}
		if got.Status != StatusActive {
			t.Errorf("Create() status = %q, want %q", got.Status, StatusActive)
		}
		if got.UserID != "u1" {
			t.Errorf("Create() user_id = %q, want u1", got.UserID)
		}
		if profiles.createdCalls != 1 {
			t.Errorf("ListingCreated called %d times, want 1", profiles.createdCalls)
		}
	})

	t.Run("rejects at the tier ceiling even for an authorized category", func(t *testing.T) {
		svc, repo, _ := newTestService(activeTrial)
		seedActive(t, repo, "u1", 5)

		_, err := svc.Create(context.Background(), "u1", validCreateRequest("villa"))
		if !errors.Is(err, core.ErrQuotaExceeded) {
			t.Fatalf("Create() error = %v, want ErrQuotaExceeded", err)
		}
		if msg := appErrMessage(t, err); msg != quota.ReasonQuotaExceeded {
			t.Errorf("message = %q, want %q", msg, quota.ReasonQuotaExceeded)
		}
	})

	t.Run("rejects an unauthorized category regardless of quota headroom", func(t *testing.T) {
		svc, repo, _ := newTestService(activeTrial)
		seedActive(t, repo, "u1", 1)

		_, err := svc.Create(context.Background(), "u1", validCreateRequest("bureau"))
		if !errors.Is(err, core.ErrForbidden) {
			t.Fatalf("Create() error = %v, want ErrForbidden", err)
		}
		if msg := appErrMessage(t, err); msg != quota.ReasonCategoryNotAuthorized {
			t.Errorf("message = %q, want %q", msg, quota.ReasonCategoryNotAuthorized)
		}
	})

	t.Run("rejects a non-active account", func(t *testing.T) {
		suspended := &quota.Profile{
			UID:          "u1",
			Email:        "ayite@example.bj",
			Status:       "suspended",
			Subscription: quota.SubscriptionTrial,
			Categories:   []string{"villa"},
		}
		svc, _, _ := newTestService(suspended)

		_, err := svc.Create(context.Background(), "u1", validCreateRequest("villa"))
		if msg := appErrMessage(t, err); msg != quota.ReasonAccountNotActive {
			t.Errorf("message = %q, want %q", msg, quota.ReasonAccountNotActive)
		}
	})

	t.Run("rejects an account with no categories configured", func(t *testing.T) {
		bare := &quota.Profile{
			UID:          "u1",
			Email:        "ayite@example.bj",
			Status:       "active",
			Subscription: quota.SubscriptionTrial,
		}
		svc, _, _ := newTestService(bare)

		_, err := svc.Create(context.Background(), "u1", validCreateRequest("villa"))
		if msg := appErrMessage(t, err); msg != quota.ReasonNoCategories {
			t.Errorf("message = %q, want %q", msg, quota.ReasonNoCategories)
		}
	})

	t.Run("demo account bypasses status, quota and category checks", func(t *testing.T) {
		demo := &quota.Profile{
			UID:          "demo",
			Email:        "Demo@Locagram.BJ",
			Status:       "suspended",
			Subscription: quota.SubscriptionTrial,
		}
		svc, repo, _ := newTestService(demo)
		seedActive(t, repo, "demo", 8)

		if _, err := svc.Create(context.Background(), "demo", validCreateRequest("bureau")); err != nil {
			t.Fatalf("Create() error = %v, want demo bypass to allow it", err)
		}
	})

	t.Run("premium publishes without a ceiling", func(t *testing.T) {
		premium := &quota.Profile{
			UID:          "u1",
			Email:        "ayite@example.bj",
			Status:       "active",
			Subscription: quota.SubscriptionPremium,
			Categories:   []string{"villa"},
		}
		svc, repo, _ := newTestService(premium)
		seedActive(t, repo, "u1", 200)

		if _, err := svc.Create(context.Background(), "u1", validCreateRequest("villa")); err != nil {
			t.Fatalf("Create() error = %v, want success for premium", err)
		}
	})

	t.Run("rejects more images than the configured limit", func(t *testing.T) {
		svc, _, _ := newTestService(activeTrial)

		req := validCreateRequest("villa")
		for i := 0; i < 7; i++ {
			req.Images = append(req.Images, "https://cdn.locagram.bj/i.jpg")
		}

		_, err := svc.Create(context.Background(), "u1", req)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("Create() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("rejects an empty user id", func(t *testing.T) {
		svc, _, _ := newTestService(activeTrial)

		_, err := svc.Create(context.Background(), "", validCreateRequest("villa"))
		if !errors.Is(err, core.ErrUnauthorized) {
			t.Fatalf("Create() error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestServicePermissions(t *testing.T) {
	tests := []struct {
		name       string
		profile    *quota.Profile
		active     int
		wantCreate bool
		wantUpload bool
		wantReason string
	}{
		{
			name: "active with headroom",
			profile: &quota.Profile{
				UID: "u1", Email: "a@b.bj", Status: "active",
				Subscription: quota.SubscriptionTrial,
				Categories:   []string{"villa"},
			},
			active:     3,
			wantCreate: true,
			wantUpload: true,
		},
		{
			name: "no categories keeps uploads open",
			profile: &quota.Profile{
				UID: "u1", Email: "a@b.bj", Status: "active",
				Subscription: quota.SubscriptionTrial,
			},
			wantUpload: true,
			wantReason: quota.ReasonNoCategories,
		},
		{
			name: "exhausted quota keeps uploads open",
			profile: &quota.Profile{
				UID: "u1", Email: "a@b.bj", Status: "active",
				Subscription: quota.SubscriptionTrial,
				Categories:   []string{"villa"},
			},
			active:     5,
			wantUpload: true,
			wantReason: quota.ReasonQuotaExceeded,
		},
		{
			name: "suspended account loses both",
			profile: &quota.Profile{
				UID: "u1", Email: "a@b.bj", Status: "suspended",
				Subscription: quota.SubscriptionTrial,
				Categories:   []string{"villa"},
			},
			wantReason: quota.ReasonAccountNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestService(tt.profile)
			seedActive(t, repo, "u1", tt.active)

			decision, err := svc.Permissions(context.Background(), "u1")
			if err != nil {
				t.Fatalf("Permissions() error = %v", err)
			}
			if decision.CanCreate != tt.wantCreate {
				t.Errorf("CanCreate = %v, want %v", decision.CanCreate, tt.wantCreate)
			}
			if decision.CanUpload != tt.wantUpload {
				t.Errorf("CanUpload = %v, want %v", decision.CanUpload, tt.wantUpload)
			}
			if decision.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", decision.Reason, tt.wantReason)
			}
		})
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	profile := &quota.Profile{
		UID: "u1", Email: "a@b.bj", Status: "active",
		Subscription: quota.SubscriptionTrial,
		Categories:   []string{"villa"},
	}

	svc, repo, _ := newTestService(profile)
	l := Listing{Title: "a", Category: "villa", UserID: "u1", Status: StatusActive}
	if err := repo.Create(context.Background(), &l); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.UpdateStatus(context.Background(), "u1", false, l.ID, StatusSold)
	if err != nil {
		t.Fatalf("UpdateStatus(active->sold) error = %v", err)
	}
	if got.Status != StatusSold {
		t.Errorf("status = %q, want %q", got.Status, StatusSold)
	}

	_, err = svc.UpdateStatus(context.Background(), "u1", false, l.ID, StatusPending)
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("UpdateStatus(sold->pending) error = %v, want ErrInvalidInput", err)
	}

	_, err = svc.UpdateStatus(context.Background(), "intruder", false, l.ID, StatusActive)
	if !errors.Is(err, core.ErrForbidden) {
		t.Errorf("UpdateStatus by non-owner error = %v, want ErrForbidden", err)
	}

	if _, err = svc.UpdateStatus(context.Background(), "moderator", true, l.ID, StatusActive); err != nil {
		t.Errorf("UpdateStatus by admin error = %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	profile := &quota.Profile{
		UID: "u1", Email: "a@b.bj", Status: "active",
		Subscription: quota.SubscriptionTrial,
		Categories:   []string{"villa"},
	}

	svc, repo, profiles := newTestService(profile)
	l := Listing{Title: "a", Category: "villa", UserID: "u1", Status: StatusActive}
	if err := repo.Create(context.Background(), &l); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Delete(context.Background(), "intruder", false, l.ID); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("Delete by non-owner error = %v, want ErrForbidden", err)
	}

	if err := svc.Delete(context.Background(), "u1", false, l.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if profiles.deletedCalls != 1 {
		t.Errorf("ListingDeleted called %d times, want 1", profiles.deletedCalls)
	}

	if err := svc.Delete(context.Background(), "u1", false, l.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}
