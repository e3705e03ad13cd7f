// Package finance holds the pure business rules of the tracker: priority
// tiers, status derivation, renewal-alert generation and the dashboard
// aggregates. Nothing in this package touches the database.
package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// renewalLeadDays is how far ahead of a policy's expiry its companion
// renewal alert falls due.
const renewalLeadDays = 30

// DaysUntil returns the number of whole days from now until the calendar
// date of due (midnight in due's location), rounding down. The result is
// negative for dates in the past.
func DaysUntil(due, now time.Time) int {
	dueMidnight := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	return int(math.Floor(dueMidnight.Sub(now).Hours() / 24))
}

// PriorityFor derives the urgency tier for a due date. Boundaries are
// inclusive on the lower side: 7 days out is high, 30 is medium, 31 is
// low. Overdue dates are high.
func PriorityFor(due, now time.Time) models.AlertPriority {
	return priorityForDays(DaysUntil(due, now))
}

func priorityForDays(days int) models.AlertPriority {
	switch {
	case days <= 7:
		return models.PriorityHigh
	case days <= 30:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// PolicyStatusFor derives a policy's status from its expiry date. The day
// difference rounds up, so a policy expiring later today still counts as
// expiring-soon rather than expired.
func PolicyStatusFor(expiry, now time.Time) models.PolicyStatus {
	expiryMidnight := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, expiry.Location())
	days := int(math.Ceil(expiryMidnight.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return models.PolicyExpired
	case days <= 30:
		return models.PolicyExpiringSoon
	default:
		return models.PolicyActive
	}
}

// InvestmentStatusFor classifies an investment by its return percentage.
func InvestmentStatusFor(returnPct float64) models.InvestmentStatus {
	switch {
	case returnPct > 2:
		return models.InvestmentGrowing
	case returnPct < -2:
		return models.InvestmentDeclining
	default:
		return models.InvestmentStable
	}
}

// PriorityFix records one alert whose stored priority disagrees with the
// freshly computed tier.
type PriorityFix struct {
	AlertID  string
	Priority models.AlertPriority
}

// SweepPriorities recomputes the priority of every alert against now and
// returns the corrections needed to bring the stored values back in line.
// Alerts without a due date are skipped. The sweep is idempotent: once
// the fixes are applied, re-running it at the same instant returns none.
func SweepPriorities(alerts []models.Alert, now time.Time) []PriorityFix {
	var fixes []PriorityFix
	for _, a := range alerts {
		if a.DueDate.IsZero() {
			continue
		}
		want := PriorityFor(a.DueDate, now)
		if a.Priority != want {
			fixes = append(fixes, PriorityFix{AlertID: a.ID, Priority: want})
		}
	}
	return fixes
}

// RenewalAlertFor builds the companion renewal alert for a newly created
// policy, due 30 days ahead of expiry. The urgency tier is computed
// against the real expiry date, not the earlier reminder date. Returns
// nil when the reminder date is not in the future (the policy expires
// within 30 days or has already expired) or the expiry date is unset.
func RenewalAlertFor(p models.Policy, now time.Time) *models.Alert {
	if p.ExpiryDate.IsZero() {
		return nil
	}
	alertDate := p.ExpiryDate.AddDate(0, 0, -renewalLeadDays)
	if !alertDate.After(now) {
		return nil
	}
	return &models.Alert{
		UserID: p.UserID,
		Type:   models.AlertRenewal,
		Title:  fmt.Sprintf("%s Renewal Due", p.Name),
		Description: fmt.Sprintf("Your %s policy expires on %s. Consider renewing soon.",
			p.Type, p.ExpiryDate.Format("2 January 2006")),
		DueDate:         alertDate,
		Priority:        PriorityFor(p.ExpiryDate, now),
		RelatedItemID:   p.ID,
		RelatedItemType: models.RelatedPolicy,
	}
}
