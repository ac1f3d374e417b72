package services

import (
	"context"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
)

// LinkResolverSvc determines linking status for a normalized phone key.
type LinkResolverSvc interface {
	// Resolve returns the matching link, or nil when none exists.
	//
	// With statusCheck=false a single read is issued and the result is
	// returned immediately, whatever its verification state. With
	// statusCheck=true the resolver polls the store for a bounded number of
	// attempts, short-circuiting as soon as a verified link is observed, so
	// a verification completed moments ago on the dashboard is seen even
	// when the store is still catching up.
	Resolve(ctx context.Context, phoneKey string, statusCheck bool) (*domain.AccountLink, error)
}

// LinkVerificationSvc manages the pending-code lifecycle of a link.
type LinkVerificationSvc interface {
	// EnsureVerification returns the verification code the user must enter
	// on the dashboard. An existing pending code is reused unchanged; a
	// verified link yields alreadyLinked=true and no code.
	EnsureVerification(ctx context.Context, phoneKey string) (code string, alreadyLinked bool, err error)

	// VerifyLink marks the link verified and binds it to a dashboard
	// account. Called by the dashboard API, never from message handling.
	VerifyLink(ctx context.Context, phoneKey, code, accountID string) (*domain.AccountLink, error)

	// GetLink retrieves a link without any polling.
	GetLink(ctx context.Context, phoneKey string) (*domain.AccountLink, error)
}

// LinkSvcFacade combines all link-related service interfaces.
type LinkSvcFacade interface {
	LinkResolverSvc
	LinkVerificationSvc
}
