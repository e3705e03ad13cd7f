package models

import "github.com/shopspring/decimal"

// Summary holds the dashboard aggregates computed from a user's current
// policies, investments and documents.
type Summary struct {
	TotalPolicies        int             `json:"total_policies"`
	TotalInvestments     int             `json:"total_investments"`
	TotalDocuments       int             `json:"total_documents"`
	ExpiringSoon         int             `json:"expiring_soon"`
	TotalMonthlyPremiums decimal.Decimal `json:"total_monthly_premiums"`
	TotalAnnualPremiums  decimal.Decimal `json:"total_annual_premiums"`
	TotalCoverage        decimal.Decimal `json:"total_coverage"`
	TotalInvestmentValue decimal.Decimal `json:"total_investment_value"`
	TotalContributions   decimal.Decimal `json:"total_contributions"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	AvgReturn            float64         `json:"avg_return"`
	PositiveReturns      int             `json:"positive_returns"`
	DecliningInvestments int             `json:"declining_investments"`
}

// Allocation is one slice of the portfolio allocation breakdown.
type Allocation struct {
	InvestmentID string          `json:"investment_id"`
	Name         string          `json:"name"`
	Value        decimal.Decimal `json:"value"`
	Percent      float64         `json:"percent"`
}
