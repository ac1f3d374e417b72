package dto

import (
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// VerifyLinkRequest carries the code the user typed into the dashboard
// together with the account it should bind to.
type VerifyLinkRequest struct {
	Phone     string `json:"phone" binding:"required,brphone"`
	Code      string `json:"code" binding:"required,len=6"`
	AccountID string `json:"accountID" binding:"required"`
}

// LinkResponse defines the data returned for an account link.
type LinkResponse struct {
	Phone      string    `json:"phone"`
	AccountID  string    `json:"accountID"` // Empty string until verified
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToLinkResponse converts a domain.AccountLink to LinkResponse DTO
func ToLinkResponse(link *domain.AccountLink) LinkResponse {
	return LinkResponse{
		Phone:      link.PhoneKey,
		AccountID:  link.AccountID,
		IsVerified: link.IsVerified,
		CreatedAt:  link.CreatedAt,
	}
}
