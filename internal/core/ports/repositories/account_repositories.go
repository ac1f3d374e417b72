package repositories

import (
	"context"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// FundingAccountReader defines read operations for funding-account data.
// The bot never writes funding accounts; they are managed on the dashboard.
type FundingAccountReader interface {
	// ListFundingAccountsByOwner retrieves the owner's funding accounts in
	// the store's natural (creation) order. The extractor relies on that
	// order when it falls back to the first registered account.
	ListFundingAccountsByOwner(ctx context.Context, ownerID string) ([]domain.FundingAccount, error)
}
