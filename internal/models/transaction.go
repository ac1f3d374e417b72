package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID    string
	OwnerID          string
	FundingAccountID string
	CategoryID       string
	Kind             CategoryKind
	Amount           decimal.Decimal
	Description      string
	OccurredAt       time.Time
	CreatedAt        time.Time
}
