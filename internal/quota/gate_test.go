// AngelaMos | 2026
// gate_test.go

package quota

import (
	"testing"

	"github.com/locagram/locagram-api/internal/config"
)

const demoEmail = "demo@locagram.bj"

func testGate() *Gate {
	return NewGate(testPolicy(), demoEmail)
}

func activeProfile() *Profile {
	return &Profile{
		UID:          "user-1",
		Email:        "agent@example.com",
		Status:       "active",
		Subscription: SubscriptionTrial,
		Categories:   []string{"villas"},
	}
}

func TestCheck_NotAuthenticated(t *testing.T) {
	g := testGate()

	for _, p := range []*Profile{nil, {Email: "x@y.z"}} {
		d := g.Check(p, 0)
		if d.CanCreate || d.CanUpload {
			t.Errorf("Check(%v) allowed an unauthenticated profile", p)
		}
		if d.Reason != ReasonNotAuthenticated {
			t.Errorf("reason = %q, want %q", d.Reason, ReasonNotAuthenticated)
		}
	}
}

func TestCheck_AccountNotActive(t *testing.T) {
	g := testGate()

	for _, status := range []string{"inactive", "pending", "suspended"} {
		p := activeProfile()
		p.Status = status

		d := g.Check(p, 0)
		if d.CanCreate || d.CanUpload {
			t.Errorf("status %q: expected full denial, got %+v", status, d)
		}
		if d.Reason != ReasonAccountNotActive {
			t.Errorf("status %q: reason = %q, want %q",
				status, d.Reason, ReasonAccountNotActive)
		}
	}
}

func TestCheck_NoCategoriesStillAllowsUpload(t *testing.T) {
	g := testGate()

	p := activeProfile()
	p.Categories = nil

	d := g.Check(p, 0)
	if d.CanCreate {
		t.Error("expected create denied with no categories")
	}
	if !d.CanUpload {
		t.Error("expected upload still allowed with no categories")
	}
	if d.Reason != ReasonNoCategories {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonNoCategories)
	}
}

func TestCheck_QuotaExceeded(t *testing.T) {
	g := testGate()

	p := activeProfile()

	d := g.Check(p, 5)
	if d.CanCreate {
		t.Error("expected create denied at trial ceiling")
	}
	if !d.CanUpload {
		t.Error("expected upload still allowed at ceiling")
	}
	if d.Reason != ReasonQuotaExceeded {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonQuotaExceeded)
	}
}

func TestCheck_UnderQuota(t *testing.T) {
	g := testGate()

	d := g.Check(activeProfile(), 4)
	if !d.CanCreate || !d.CanUpload {
		t.Errorf("expected full allow, got %+v", d)
	}
	if d.Reason != "" {
		t.Errorf("unexpected reason %q", d.Reason)
	}
}

func TestCheck_PremiumNeverExhausts(t *testing.T) {
	g := testGate()

	p := activeProfile()
	p.Subscription = SubscriptionPremium

	d := g.Check(p, 10000)
	if !d.CanCreate {
		t.Errorf("premium at 10000 active: expected allow, got %+v", d)
	}
}

func TestCheck_DemoBypassSkipsEverything(t *testing.T) {
	g := testGate()

	p := &Profile{
		UID:          "demo-1",
		Email:        "Demo@Locagram.BJ",
		Status:       "suspended",
		Subscription: SubscriptionTrial,
	}

	d := g.Check(p, 99)
	if !d.CanCreate || !d.CanUpload {
		t.Errorf("demo bypass: expected full allow, got %+v", d)
	}
}

func TestCheck_BypassDisabledWhenUnset(t *testing.T) {
	g := NewGate(testPolicy(), "")

	p := activeProfile()
	p.Email = ""
	p.Status = "suspended"

	d := g.Check(p, 0)
	if d.CanCreate {
		t.Errorf("empty bypass email must not match, got %+v", d)
	}
}

func TestCategoryAllowed(t *testing.T) {
	g := testGate()
	p := activeProfile()

	if !g.CategoryAllowed(p, "villas") {
		t.Error("expected configured category to be allowed")
	}
	if g.CategoryAllowed(p, "appartements") {
		t.Error("expected unconfigured category to be denied")
	}
	if g.CategoryAllowed(nil, "villas") {
		t.Error("expected nil profile to be denied")
	}

	p.Email = demoEmail
	if !g.CategoryAllowed(p, "appartements") {
		t.Error("expected demo bypass to allow any category")
	}
}

func TestCheck_QuotaCeilingsComeFromConfig(t *testing.T) {
	g := NewGate(NewPolicy(config.QuotaConfig{
		Trial:   1,
		Basic:   2,
		Premium: Unlimited,
	}), "")

	d := g.Check(activeProfile(), 1)
	if d.CanCreate {
		t.Errorf("custom trial ceiling of 1: expected denial, got %+v", d)
	}
}
