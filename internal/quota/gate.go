// AngelaMos | 2026
// gate.go

package quota

import (
	"strings"
)

// Stable rejection reasons surfaced to clients. Treated as API contract.
const (
	ReasonNotAuthenticated      = "not authenticated"
	ReasonAccountNotActive      = "account not active"
	ReasonNoCategories          = "no categories configured"
	ReasonQuotaExceeded         = "quota exceeded for tier"
	ReasonCategoryNotAuthorized = "category not authorized"
)

const statusActive = "active"

// Profile is the snapshot of an account the gate decides on. It is built
// by the caller from the persisted user record.
type Profile struct {
	UID          string
	Email        string
	Status       string
	Subscription string
	Categories   []string
}

type Decision struct {
	CanCreate bool   `json:"can_create"`
	CanUpload bool   `json:"can_upload"`
	Reason    string `json:"reason,omitempty"`
}

// Gate is the single choke-point deciding whether an account may publish
// a listing or upload listing images. It performs no I/O.
type Gate struct {
	policy      *Policy
	bypassEmail string
}

// NewGate wires the quota policy and the demo-account bypass email.
// The bypass skips every check for that one address; it exists for
// demonstration accounts and is disabled when the email is empty.
func NewGate(policy *Policy, bypassEmail string) *Gate {
	return &Gate{
		policy:      policy,
		bypassEmail: bypassEmail,
	}
}

// Check evaluates, in order: authentication, demo bypass, account status,
// configured categories, and remaining quota. An account with no
// categories or an exhausted quota may still upload images; it only loses
// the right to publish.
func (g *Gate) Check(profile *Profile, activeListings int) Decision {
	if profile == nil || profile.UID == "" {
		return Decision{Reason: ReasonNotAuthenticated}
	}

	if g.isBypass(profile.Email) {
		return Decision{CanCreate: true, CanUpload: true}
	}

	if profile.Status != statusActive {
		return Decision{Reason: ReasonAccountNotActive}
	}

	if len(profile.Categories) == 0 {
		return Decision{CanUpload: true, Reason: ReasonNoCategories}
	}

	remaining, unlimited := g.policy.Remaining(
		profile.Subscription,
		activeListings,
	)
	if !unlimited && remaining == 0 {
		return Decision{CanUpload: true, Reason: ReasonQuotaExceeded}
	}

	return Decision{CanCreate: true, CanUpload: true}
}

// CategoryAllowed reports whether the profile may publish under the given
// category slug. Checked by the creation flow in addition to Check.
func (g *Gate) CategoryAllowed(profile *Profile, slug string) bool {
	if profile == nil {
		return false
	}

	if g.isBypass(profile.Email) {
		return true
	}

	for _, c := range profile.Categories {
		if c == slug {
			return true
		}
	}

	return false
}

func (g *Gate) isBypass(email string) bool {
	return g.bypassEmail != "" && strings.EqualFold(email, g.bypassEmail)
}
