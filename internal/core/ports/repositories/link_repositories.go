package repositories

import (
	"context"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// LinkReader defines read operations for account-link data.
type LinkReader interface {
	// FindLinkByPhone retrieves the link for a normalized phone key.
	// Returns apperrors.ErrNotFound when no link exists.
	FindLinkByPhone(ctx context.Context, phoneKey string) (*domain.AccountLink, error)

	// ListLinks retrieves every account link. The resolver's poll path scans
	// this full set instead of issuing a point lookup, to tolerate a
	// filtered index that has not yet caught up with a recent write.
	ListLinks(ctx context.Context) ([]domain.AccountLink, error)
}

// LinkWriter defines write operations for account-link data.
type LinkWriter interface {
	// SaveLink persists a new, unverified link.
	SaveLink(ctx context.Context, link domain.AccountLink) error

	// UpdateLink updates the link row identified by link.PhoneKey.
	UpdateLink(ctx context.Context, link domain.AccountLink) error
}

// LinkRepositoryFacade combines all link-related repository interfaces.
type LinkRepositoryFacade interface {
	LinkReader
	LinkWriter
}
