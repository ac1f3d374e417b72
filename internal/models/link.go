package models

import "time"

// AccountLink mirrors the account_links table.
type AccountLink struct {
	PhoneKey         string
	AccountID        string // NULL in the database until verified
	VerificationCode string
	IsVerified       bool
	CreatedAt        time.Time
}
