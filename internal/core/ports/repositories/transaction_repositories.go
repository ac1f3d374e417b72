package repositories

import (
	"context"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. This is the single
	// terminal write of the extraction flow.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// ListMonthEntries retrieves transactions occurring within [from, to]
	// (inclusive both bounds) joined with their category name and kind.
	ListMonthEntries(ctx context.Context, ownerID string, from, to time.Time) ([]domain.MonthEntry, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
