package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/SamuelRomaoF/financas-bot/internal/utils"
)

const (
	// linkPollAttempts bounds the status-check poll. Worst case the poll
	// adds (linkPollAttempts-1) * linkPollInterval of latency to a single
	// message, roughly eight seconds.
	linkPollAttempts = 5
	linkPollInterval = 2 * time.Second

	verificationCodeDigits = 6
)

// DelayFunc suspends between poll attempts. Injectable so tests can run the
// poll without wall-clock waits.
type DelayFunc func(ctx context.Context, d time.Duration) error

// sleepDelay is the production DelayFunc; it honors context cancellation.
func sleepDelay(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// linkService implements the LinkSvcFacade interface.
type linkService struct {
	BaseService
	linkRepo portsrepo.LinkRepositoryFacade
	delay    DelayFunc
}

// LinkServiceOption is a functional option for configuring the link service
type LinkServiceOption func(*linkService)

// WithDelayFunc overrides the delay between poll attempts.
func WithDelayFunc(d DelayFunc) LinkServiceOption {
	return func(s *linkService) {
		s.delay = d
	}
}

// NewLinkService creates a new link service with the provided options
func NewLinkService(repo portsrepo.LinkRepositoryFacade, options ...LinkServiceOption) portssvc.LinkSvcFacade {
	svc := &linkService{
		linkRepo: repo,
		delay:    sleepDelay,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure linkService implements the LinkSvcFacade interface
var _ portssvc.LinkSvcFacade = (*linkService)(nil)

// Resolve looks up the link for a normalized phone key.
//
// Ordinary conversation (statusCheck=false) must never block on store
// convergence, so it issues exactly one filtered read and returns whatever
// state that read observes. A status-check message polls: the user is
// explicitly asking whether the verification they just completed on the
// dashboard went through, and that write may not yet be visible to reads.
func (s *linkService) Resolve(ctx context.Context, phoneKey string, statusCheck bool) (*domain.AccountLink, error) {
	if !statusCheck {
		link, err := s.linkRepo.FindLinkByPhone(ctx, phoneKey)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil
			}
			s.LogError(ctx, err, "Failed to resolve link", slog.String("phone_key", phoneKey))
			return nil, fmt.Errorf("failed to resolve link: %w", err)
		}
		return link, nil
	}

	var last *domain.AccountLink
	var lastErr error
	for attempt := 1; attempt <= linkPollAttempts; attempt++ {
		// Full scan rather than a point lookup: a very recent verification
		// write may not be visible through the filtered read path yet.
		links, err := s.linkRepo.ListLinks(ctx)
		if err != nil {
			lastErr = err
			s.LogDebug(ctx, "Link status poll attempt failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
		} else {
			lastErr = nil
			for i := range links {
				if links[i].PhoneKey == phoneKey {
					found := links[i]
					last = &found
					break
				}
			}
			if last != nil && last.IsVerified {
				s.LogInfo(ctx, "Verified link observed during status poll",
					slog.String("phone_key", phoneKey),
					slog.Int("attempt", attempt))
				return last, nil
			}
		}

		if attempt < linkPollAttempts {
			if derr := s.delay(ctx, linkPollInterval); derr != nil {
				return nil, derr
			}
		}
	}

	if lastErr != nil {
		s.LogError(ctx, lastErr, "Link status poll exhausted with store error",
			slog.String("phone_key", phoneKey),
			slog.Int("attempts", linkPollAttempts))
		return nil, fmt.Errorf("link status poll failed after %d attempts: %w", linkPollAttempts, lastErr)
	}
	return last, nil
}

// EnsureVerification returns the code the user must enter on the dashboard,
// creating a pending link when none exists. A still-pending code is reused
// unchanged so that repeated "/vincular" messages all show the same code.
func (s *linkService) EnsureVerification(ctx context.Context, phoneKey string) (string, bool, error) {
	link, err := s.linkRepo.FindLinkByPhone(ctx, phoneKey)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up link before issuing code", slog.String("phone_key", phoneKey))
		return "", false, fmt.Errorf("failed to look up link: %w", err)
	}

	if link != nil {
		if link.IsVerified {
			return "", true, nil
		}
		s.LogDebug(ctx, "Reusing pending verification code", slog.String("phone_key", phoneKey))
		return link.VerificationCode, false, nil
	}

	code, err := utils.GenerateNumericCode(verificationCodeDigits)
	if err != nil {
		return "", false, fmt.Errorf("failed to generate verification code: %w", err)
	}

	newLink := domain.AccountLink{
		PhoneKey:         phoneKey,
		VerificationCode: code,
		IsVerified:       false,
		CreatedAt:        time.Now(),
	}
	if err := s.linkRepo.SaveLink(ctx, newLink); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with another message from the same sender; reuse
			// whichever code won.
			existing, ferr := s.linkRepo.FindLinkByPhone(ctx, phoneKey)
			if ferr == nil {
				return existing.VerificationCode, existing.IsVerified, nil
			}
		}
		s.LogError(ctx, err, "Failed to save new link", slog.String("phone_key", phoneKey))
		return "", false, fmt.Errorf("failed to save link: %w", err)
	}

	s.LogInfo(ctx, "Verification code issued", slog.String("phone_key", phoneKey))
	return code, false, nil
}

// VerifyLink marks a pending link verified and binds it to a dashboard
// account. Idempotent for an already verified link.
func (s *linkService) VerifyLink(ctx context.Context, phoneKey, code, accountID string) (*domain.AccountLink, error) {
	link, err := s.linkRepo.FindLinkByPhone(ctx, phoneKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find link for verification", slog.String("phone_key", phoneKey))
		}
		return nil, err
	}

	if link.IsVerified {
		return link, nil
	}

	if link.VerificationCode != code {
		s.LogDebug(ctx, "Verification code mismatch", slog.String("phone_key", phoneKey))
		return nil, fmt.Errorf("%w: verification code mismatch", apperrors.ErrValidation)
	}

	link.AccountID = accountID
	link.IsVerified = true
	if err := s.linkRepo.UpdateLink(ctx, *link); err != nil {
		s.LogError(ctx, err, "Failed to mark link verified", slog.String("phone_key", phoneKey))
		return nil, fmt.Errorf("failed to update link: %w", err)
	}

	s.LogInfo(ctx, "Link verified",
		slog.String("phone_key", phoneKey),
		slog.String("account_id", accountID))
	return link, nil
}

// GetLink retrieves a link without polling.
func (s *linkService) GetLink(ctx context.Context, phoneKey string) (*domain.AccountLink, error) {
	return s.linkRepo.FindLinkByPhone(ctx, phoneKey)
}
