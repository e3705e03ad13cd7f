package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment represents a savings or investment vehicle owned by a user.
type Investment struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"user_id"`
	Name                string              `json:"name"`
	Type                InvestmentType      `json:"type"`
	Provider            string              `json:"provider"`
	AccountNumber       string              `json:"account_number,omitempty"`
	StartDate           time.Time           `json:"start_date"`
	CurrentValue        decimal.Decimal     `json:"current_value"`
	TotalContributions  decimal.Decimal     `json:"total_contributions"`
	MonthlyContribution decimal.NullDecimal `json:"monthly_contribution,omitempty"`
	ReturnPercentage    float64             `json:"return_percentage"`
	Status              InvestmentStatus    `json:"status"`
	Notes               string              `json:"notes,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
}
