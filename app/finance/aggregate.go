package finance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// expiringWindowDays is the look-ahead window for the expiring-soon count.
const expiringWindowDays = 60

// Profit returns an investment's unrealized gain: current value minus
// total contributions.
func Profit(inv models.Investment) decimal.Decimal {
	return inv.CurrentValue.Sub(inv.TotalContributions)
}

// Summarize computes the dashboard aggregates from a user's collections.
// It is pure and deterministic given its inputs and now.
func Summarize(policies []models.Policy, investments []models.Investment, documentsCount int, now time.Time) models.Summary {
	s := models.Summary{
		TotalPolicies:    len(policies),
		TotalInvestments: len(investments),
		TotalDocuments:   documentsCount,
	}

	for _, p := range policies {
		s.TotalCoverage = s.TotalCoverage.Add(p.Coverage)
		switch p.PremiumFrequency {
		case models.PremiumMonthly:
			s.TotalMonthlyPremiums = s.TotalMonthlyPremiums.Add(p.Premium)
		case models.PremiumAnnual:
			s.TotalAnnualPremiums = s.TotalAnnualPremiums.Add(p.Premium)
		}
		if p.ExpiryDate.IsZero() {
			continue
		}
		if days := DaysUntil(p.ExpiryDate, now); days > 0 && days <= expiringWindowDays {
			s.ExpiringSoon++
		}
	}

	var returnSum float64
	for _, inv := range investments {
		s.TotalInvestmentValue = s.TotalInvestmentValue.Add(inv.CurrentValue)
		s.TotalContributions = s.TotalContributions.Add(inv.TotalContributions)
		s.TotalProfit = s.TotalProfit.Add(Profit(inv))
		returnSum += inv.ReturnPercentage
		if inv.ReturnPercentage > 0 {
			s.PositiveReturns++
		}
		if inv.Status == models.InvestmentDeclining {
			s.DecliningInvestments++
		}
	}
	// Average of an empty set is defined as zero, never NaN.
	if len(investments) > 0 {
		s.AvgReturn = returnSum / float64(len(investments))
	}

	return s
}

// Allocations computes each investment's share of the total portfolio
// value as a percentage. When the total is zero every share is zero; the
// division is guarded so no NaN can escape.
func Allocations(investments []models.Investment) []models.Allocation {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.CurrentValue)
	}

	allocs := make([]models.Allocation, 0, len(investments))
	for _, inv := range investments {
		a := models.Allocation{
			InvestmentID: inv.ID,
			Name:         inv.Name,
			Value:        inv.CurrentValue,
		}
		if !total.IsZero() {
			pct, _ := inv.CurrentValue.Div(total).Mul(decimal.NewFromInt(100)).Float64()
			a.Percent = pct
		}
		allocs = append(allocs, a)
	}
	return allocs
}

// SearchResult holds the three collections after filtering.
type SearchResult struct {
	Policies    []models.Policy     `json:"policies"`
	Investments []models.Investment `json:"investments"`
	Alerts      []models.Alert      `json:"alerts"`
}

// Search filters the three collections by a case-insensitive substring
// match over a fixed set of fields per entity kind. An empty or
// whitespace-only query returns the inputs unchanged, in their original
// order. The filter is pure and does not persist anything.
func Search(query string, policies []models.Policy, investments []models.Investment, alerts []models.Alert) SearchResult {
	if strings.TrimSpace(query) == "" {
		return SearchResult{Policies: policies, Investments: investments, Alerts: alerts}
	}
	q := strings.ToLower(query)

	res := SearchResult{}
	for _, p := range policies {
		if containsFold(q, p.Name, p.Provider, p.PolicyNumber, string(p.Type)) {
			res.Policies = append(res.Policies, p)
		}
	}
	for _, inv := range investments {
		if containsFold(q, inv.Name, inv.Provider, string(inv.Type)) {
			res.Investments = append(res.Investments, inv)
		}
	}
	for _, a := range alerts {
		if containsFold(q, a.Title, a.Description) {
			res.Alerts = append(res.Alerts, a)
		}
	}
	return res
}

// containsFold reports whether any of the fields contains the already
// lower-cased query.
func containsFold(lowerQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}
