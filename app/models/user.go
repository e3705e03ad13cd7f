package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Preferences holds per-user presentation settings. Money visibility and
// theme used to live in ambient client state; they are persisted here so
// every consumer reads the same value through an explicit setter.
type Preferences struct {
	UserID       string    `json:"user_id"`
	MoneyVisible bool      `json:"money_visible"`
	Theme        string    `json:"theme"`
	UpdatedAt    time.Time `json:"updated_at"`
}
