// AngelaMos | 2026
// policy.go

package quota

import (
	"github.com/locagram/locagram-api/internal/config"
)

const (
	SubscriptionTrial   = "trial"
	SubscriptionBasic   = "basic"
	SubscriptionPremium = "premium"
)

// Unlimited marks a subscription with no active-listing ceiling.
const Unlimited = -1

// Policy maps a subscription type to its active-listing ceiling. Pure and
// deterministic; the active-listing count is always supplied by the caller.
type Policy struct {
	ceilings map[string]int
}

func NewPolicy(cfg config.QuotaConfig) *Policy {
	return &Policy{
		ceilings: map[string]int{
			SubscriptionTrial:   cfg.Trial,
			SubscriptionBasic:   cfg.Basic,
			SubscriptionPremium: cfg.Premium,
		},
	}
}

// MaxActiveListings returns the ceiling for a subscription type, or
// Unlimited. Unknown subscriptions fall back to the trial ceiling.
func (p *Policy) MaxActiveListings(subscription string) int {
	if ceiling, ok := p.ceilings[subscription]; ok {
		return ceiling
	}
	return p.ceilings[SubscriptionTrial]
}

// Remaining returns how many more listings the subscription allows given
// the current active count. unlimited is true when no ceiling applies,
// in which case the count is meaningless and returned as 0.
func (p *Policy) Remaining(
	subscription string,
	activeCount int,
) (remaining int, unlimited bool) {
	ceiling := p.MaxActiveListings(subscription)
	if ceiling == Unlimited {
		return 0, true
	}

	remaining = ceiling - activeCount
	if remaining < 0 {
		remaining = 0
	}

	return remaining, false
}
