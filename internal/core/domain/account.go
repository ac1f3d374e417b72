package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingAccount is a user-owned store of money (bank account, card,
// wallet) against which transactions are recorded. The bot reads these;
// creation and editing happen on the dashboard.
type FundingAccount struct {
	FundingAccountID string          `json:"fundingAccountID"` // Primary key (UUID)
	OwnerID          string          `json:"ownerID"`          // FK -> dashboard account
	Name             string          `json:"name"`             // User-defined name, matched against message text
	Balance          decimal.Decimal `json:"balance"`
	CreatedAt        time.Time       `json:"createdAt"`
}
