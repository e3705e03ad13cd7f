package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy represents an insurance contract owned by a user.
type Policy struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Name             string           `json:"name"`
	Type             PolicyType       `json:"type"`
	Provider         string           `json:"provider"`
	PolicyNumber     string           `json:"policy_number"`
	StartDate        time.Time        `json:"start_date"`
	ExpiryDate       time.Time        `json:"expiry_date"`
	Premium          decimal.Decimal  `json:"premium"`
	PremiumFrequency PremiumFrequency `json:"premium_frequency"`
	// Coverage of zero means unlimited cover.
	Coverage  decimal.Decimal `json:"coverage"`
	Status    PolicyStatus    `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
