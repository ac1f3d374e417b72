package repositories

import (
	"context"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// CategoryReader defines read operations for category data.
// Categories are managed on the dashboard; the bot only reads them.
type CategoryReader interface {
	// ListCategoriesByOwner retrieves all of the owner's categories in the
	// store's natural (creation) order.
	ListCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.Category, error)
}
