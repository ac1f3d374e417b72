package domain

import "time"

// AccountLink binds a normalized messaging phone key to a dashboard account.
// The bot creates it unverified with a pending code; the dashboard flips it
// to verified. The bot never deletes a link.
type AccountLink struct {
	PhoneKey         string    `json:"phoneKey"`  // Primary key, normalized digits only
	AccountID        string    `json:"accountID"` // Empty until the dashboard verifies the code
	VerificationCode string    `json:"verificationCode"`
	IsVerified       bool      `json:"isVerified"`
	CreatedAt        time.Time `json:"createdAt"`
}
