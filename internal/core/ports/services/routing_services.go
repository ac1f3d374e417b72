package services

import (
	"context"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// IntentClassifierSvc maps free-text message content to one intent.
type IntentClassifierSvc interface {
	Classify(text string) domain.Intent
}

// TransactionRecorderSvc extracts structured transaction data from text and
// records the resulting transaction.
type TransactionRecorderSvc interface {
	// RecordExpenseText parses amount, funding account and category out of a
	// free-text message and records an expense dated today. The returned
	// ParsedTransaction carries the resolved account and category so the
	// confirmation can echo their names.
	RecordExpenseText(ctx context.Context, ownerID, text string) (*domain.ParsedTransaction, error)

	// RecordSimple records a transaction from a slash command with a
	// pre-validated amount; account and category are still resolved from the
	// description text.
	RecordSimple(ctx context.Context, ownerID string, kind domain.CategoryKind, amount string, description string) (*domain.ParsedTransaction, error)
}

// ReportingSvc aggregates transactions into user-facing summaries.
type ReportingSvc interface {
	// BalanceSummary returns the owner's funding accounts; the caller sums
	// and formats them.
	BalanceSummary(ctx context.Context, ownerID string) ([]domain.FundingAccount, error)

	// CategorySummary returns the owner's categories.
	CategorySummary(ctx context.Context, ownerID string) ([]domain.Category, error)

	// MonthlyReport aggregates the calendar month containing ref.
	MonthlyReport(ctx context.Context, ownerID string, ref time.Time) (*domain.MonthlyReport, error)
}

// MessageRouterSvc orchestrates the full handling of one inbound message
// and returns the single reply to send back.
type MessageRouterSvc interface {
	HandleMessage(ctx context.Context, senderID, text string) (string, error)
}
