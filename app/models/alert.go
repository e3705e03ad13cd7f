package models

import "time"

// Alert represents a reminder, optionally tied to a policy or investment.
// DueDate is a calendar date; a zero DueDate means the alert has no due
// date and is skipped by the priority sweep.
type Alert struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Type            AlertType       `json:"type"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DueDate         time.Time       `json:"due_date"`
	Priority        AlertPriority   `json:"priority"`
	RelatedItemID   string          `json:"related_item_id,omitempty"`
	RelatedItemType RelatedItemType `json:"related_item_type,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
