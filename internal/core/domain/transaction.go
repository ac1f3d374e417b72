package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single recorded expense or income entry.
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Primary key (UUID)
	OwnerID          string          `json:"ownerID"`       // FK -> dashboard account
	FundingAccountID string          `json:"fundingAccountID"`
	CategoryID       string          `json:"categoryID"`
	Kind             CategoryKind    `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	OccurredAt       time.Time       `json:"occurredAt"` // Date the transaction happened (day precision)
	CreatedAt        time.Time       `json:"createdAt"`
}

// ParsedTransaction is the ephemeral result of extracting structured data
// from a free-text message. It is built per message, submitted once as a
// Transaction, then discarded.
type ParsedTransaction struct {
	Amount         decimal.Decimal
	FundingAccount FundingAccount
	Category       Category
}
