// Package models holds the domain types shared by the kiosk client:
// registered accounts and transient UI notifications.
package models

import (
	"strconv"
	"time"
)

// Account is a registered user's durable profile. Accounts are created by
// signup, never mutated afterwards, and never deleted. The password is kept
// in plain text: this is a demo kiosk, not a credential store.
type Account struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	JoinDate time.Time `json:"joinDate"`
}

// NewAccount builds a fresh account with a time-derived unique ID and the
// join date set to now.
func NewAccount(name, email, password string) Account {
	now := time.Now()
	return Account{
		ID:       strconv.FormatInt(now.UnixNano(), 10),
		Name:     name,
		Email:    email,
		Password: password,
		JoinDate: now,
	}
}
