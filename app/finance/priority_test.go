package finance

import (
	"strings"
	"testing"
	"time"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// midnight keeps day arithmetic exact in the tests below.
var midnight = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		now  time.Time
		want int
	}{
		{
			name: "same day at midnight",
			due:  midnight,
			now:  midnight,
			want: 0,
		},
		{
			name: "tomorrow seen from evening rounds down to zero",
			due:  midnight.AddDate(0, 0, 1),
			now:  midnight.Add(18 * time.Hour),
			want: 0,
		},
		{
			name: "yesterday is negative",
			due:  midnight.AddDate(0, 0, -1),
			now:  midnight,
			want: -1,
		},
		{
			name: "time of day on the due date is ignored",
			due:  midnight.AddDate(0, 0, 5).Add(23 * time.Hour),
			now:  midnight,
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.due, tt.now); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		name string
		days int
		want models.AlertPriority
	}{
		{"overdue", -5, models.PriorityHigh},
		{"due today", 0, models.PriorityHigh},
		{"exactly seven days", 7, models.PriorityHigh},
		{"eight days", 8, models.PriorityMedium},
		{"exactly thirty days", 30, models.PriorityMedium},
		{"thirty one days", 31, models.PriorityLow},
		{"far out", 365, models.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := midnight.AddDate(0, 0, tt.days)
			if got := PriorityFor(due, midnight); got != tt.want {
				t.Errorf("PriorityFor(%d days) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}

func TestPolicyStatusFor(t *testing.T) {
	tests := []struct {
		name string
		days int
		want models.PolicyStatus
	}{
		{"expired yesterday", -1, models.PolicyExpired},
		{"expires today", 0, models.PolicyExpiringSoon},
		{"expires in thirty days", 30, models.PolicyExpiringSoon},
		{"expires in thirty one days", 31, models.PolicyActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := midnight.AddDate(0, 0, tt.days)
			if got := PolicyStatusFor(expiry, midnight); got != tt.want {
				t.Errorf("PolicyStatusFor(%d days) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}

	t.Run("expiring later today rounds up, not expired", func(t *testing.T) {
		now := midnight.Add(12 * time.Hour)
		if got := PolicyStatusFor(midnight, now); got != models.PolicyExpiringSoon {
			t.Errorf("PolicyStatusFor() = %q, want %q", got, models.PolicyExpiringSoon)
		}
	})
}

func TestInvestmentStatusFor(t *testing.T) {
	tests := []struct {
		returnPct float64
		want      models.InvestmentStatus
	}{
		{5.0, models.InvestmentGrowing},
		{2.1, models.InvestmentGrowing},
		{2.0, models.InvestmentStable},
		{0, models.InvestmentStable},
		{-2.0, models.InvestmentStable},
		{-2.1, models.InvestmentDeclining},
		{-10, models.InvestmentDeclining},
	}

	for _, tt := range tests {
		if got := InvestmentStatusFor(tt.returnPct); got != tt.want {
			t.Errorf("InvestmentStatusFor(%v) = %q, want %q", tt.returnPct, got, tt.want)
		}
	}
}

func TestSweepPriorities(t *testing.T) {
	alerts := []models.Alert{
		{ID: "a1", DueDate: midnight.AddDate(0, 0, 3), Priority: models.PriorityLow},     // should be high
		{ID: "a2", DueDate: midnight.AddDate(0, 0, 20), Priority: models.PriorityMedium}, // already correct
		{ID: "a3", DueDate: midnight.AddDate(0, 0, 90), Priority: models.PriorityHigh},   // should be low
		{ID: "a4", Priority: models.PriorityHigh},                                        // no due date, skipped
	}

	fixes := SweepPriorities(alerts, midnight)
	if len(fixes) != 2 {
		t.Fatalf("SweepPriorities() returned %d fixes, want 2", len(fixes))
	}
	if fixes[0].AlertID != "a1" || fixes[0].Priority != models.PriorityHigh {
		t.Errorf("first fix = %+v, want a1/high", fixes[0])
	}
	if fixes[1].AlertID != "a3" || fixes[1].Priority != models.PriorityLow {
		t.Errorf("second fix = %+v, want a3/low", fixes[1])
	}
}

func TestSweepPrioritiesIdempotent(t *testing.T) {
	alerts := []models.Alert{
		{ID: "a1", DueDate: midnight.AddDate(0, 0, 2), Priority: models.PriorityLow},
		{ID: "a2", DueDate: midnight.AddDate(0, 0, 45), Priority: models.PriorityMedium},
	}

	fixes := SweepPriorities(alerts, midnight)
	if len(fixes) != 2 {
		t.Fatalf("first sweep returned %d fixes, want 2", len(fixes))
	}

	// Apply the corrections, then sweep again at the same instant.
	byID := make(map[string]models.AlertPriority, len(fixes))
	for _, f := range fixes {
		byID[f.AlertID] = f.Priority
	}
	for i := range alerts {
		if p, ok := byID[alerts[i].ID]; ok {
			alerts[i].Priority = p
		}
	}

	if again := SweepPriorities(alerts, midnight); len(again) != 0 {
		t.Errorf("second sweep returned %d fixes, want 0", len(again))
	}
}

func TestRenewalAlertFor(t *testing.T) {
	policy := models.Policy{
		ID:     "p1",
		UserID: "u1",
		Name:   "Family Life Cover",
		Type:   models.PolicyLife,
	}

	t.Run("expiry 100 days out creates alert due 70 days out", func(t *testing.T) {
		p := policy
		p.ExpiryDate = midnight.AddDate(0, 0, 100)

		alert := RenewalAlertFor(p, midnight)
		if alert == nil {
			t.Fatal("RenewalAlertFor() = nil, want alert")
		}
		if want := midnight.AddDate(0, 0, 70); !alert.DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", alert.DueDate, want)
		}
		if alert.Priority != models.PriorityLow {
			t.Errorf("Priority = %q, want %q", alert.Priority, models.PriorityLow)
		}
		if alert.Type != models.AlertRenewal {
			t.Errorf("Type = %q, want %q", alert.Type, models.AlertRenewal)
		}
		if alert.RelatedItemID != "p1" || alert.RelatedItemType != models.RelatedPolicy {
			t.Errorf("related item = %q/%q, want p1/policy", alert.RelatedItemID, alert.RelatedItemType)
		}
		if !strings.Contains(alert.Description, p.ExpiryDate.Format("2 January 2006")) {
			t.Errorf("Description %q does not mention the expiry date", alert.Description)
		}
	})

	t.Run("urgency follows the real expiry, not the reminder date", func(t *testing.T) {
		p := policy
		p.ExpiryDate = midnight.AddDate(0, 0, 40)

		alert := RenewalAlertFor(p, midnight)
		if alert == nil {
			t.Fatal("RenewalAlertFor() = nil, want alert")
		}
		// Reminder falls due in 10 days, but expiry is 40 days out.
		if alert.Priority != models.PriorityLow {
			t.Errorf("Priority = %q, want %q", alert.Priority, models.PriorityLow)
		}
	})

	t.Run("expiry within 30 days creates nothing", func(t *testing.T) {
		p := policy
		p.ExpiryDate = midnight.AddDate(0, 0, 20)
		if alert := RenewalAlertFor(p, midnight); alert != nil {
			t.Errorf("RenewalAlertFor() = %+v, want nil", alert)
		}
	})

	t.Run("expired policy creates nothing", func(t *testing.T) {
		p := policy
		p.ExpiryDate = midnight.AddDate(0, 0, -10)
		if alert := RenewalAlertFor(p, midnight); alert != nil {
			t.Errorf("RenewalAlertFor() = %+v, want nil", alert)
		}
	})

	t.Run("unset expiry creates nothing", func(t *testing.T) {
		if alert := RenewalAlertFor(policy, midnight); alert != nil {
			t.Errorf("RenewalAlertFor() = %+v, want nil", alert)
		}
	})
}
