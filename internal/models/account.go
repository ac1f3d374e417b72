package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingAccount mirrors the funding_accounts table.
type FundingAccount struct {
	FundingAccountID string
	OwnerID          string
	Name             string
	Balance          decimal.Decimal
	CreatedAt        time.Time
}
