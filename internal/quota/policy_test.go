// AngelaMos | 2026
// policy_test.go

package quota

import (
	"testing"

	"github.com/locagram/locagram-api/internal/config"
)

func testPolicy() *Policy {
	return NewPolicy(config.QuotaConfig{
		Trial:   5,
		Basic:   10,
		Premium: Unlimited,
	})
}

func TestMaxActiveListings(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		subscription string
		want         int
	}{
		{SubscriptionTrial, 5},
		{SubscriptionBasic, 10},
		{SubscriptionPremium, Unlimited},
		{"unknown", 5},
		{"", 5},
	}

	for _, tt := range tests {
		if got := p.MaxActiveListings(tt.subscription); got != tt.want {
			t.Errorf("MaxActiveListings(%q) = %d, want %d",
				tt.subscription, got, tt.want)
		}
	}
}

func TestRemaining(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name          string
		subscription  string
		active        int
		wantRemaining int
		wantUnlimited bool
	}{
		{"trial at ceiling", SubscriptionTrial, 5, 0, false},
		{"trial under ceiling", SubscriptionTrial, 3, 2, false},
		{"trial over ceiling clamps to zero", SubscriptionTrial, 8, 0, false},
		{"basic fresh", SubscriptionBasic, 0, 10, false},
		{"premium is unlimited", SubscriptionPremium, 10000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, unlimited := p.Remaining(tt.subscription, tt.active)
			if remaining != tt.wantRemaining || unlimited != tt.wantUnlimited {
				t.Errorf("Remaining(%q, %d) = (%d, %v), want (%d, %v)",
					tt.subscription, tt.active,
					remaining, unlimited,
					tt.wantRemaining, tt.wantUnlimited)
			}
		})
	}
}
