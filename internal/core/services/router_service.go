package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/SamuelRomaoF/financas-bot/internal/utils"
)

// routerService implements the MessageRouterSvc interface. It orchestrates
// the full pipeline for one inbound message: normalize the sender, resolve
// the link, then either issue verification instructions or dispatch the
// classified intent.
type routerService struct {
	BaseService
	link       portssvc.LinkSvcFacade
	classifier portssvc.IntentClassifierSvc
	recorder   portssvc.TransactionRecorderSvc
	reporting  portssvc.ReportingSvc
	composer   *ReplyComposer
	now        func() time.Time
}

// RouterServiceOption is a functional option for configuring the router service
type RouterServiceOption func(*routerService)

// WithRouterClock overrides the clock used for report windows.
func WithRouterClock(now func() time.Time) RouterServiceOption {
	return func(s *routerService) {
		s.now = now
	}
}

// NewRouterService creates a new message router with the provided options
func NewRouterService(
	link portssvc.LinkSvcFacade,
	classifier portssvc.IntentClassifierSvc,
	recorder portssvc.TransactionRecorderSvc,
	reporting portssvc.ReportingSvc,
	composer *ReplyComposer,
	options ...RouterServiceOption,
) portssvc.MessageRouterSvc {
	svc := &routerService{
		link:       link,
		classifier: classifier,
		recorder:   recorder,
		reporting:  reporting,
		composer:   composer,
		now:        time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure routerService implements the MessageRouterSvc interface
var _ portssvc.MessageRouterSvc = (*routerService)(nil)

// HandleMessage processes one inbound message and returns the single reply.
// Store failures never escape as errors to the caller: they are logged and
// translated into the generic "try again" reply. The error return is
// reserved for context cancellation.
func (s *routerService) HandleMessage(ctx context.Context, senderID, text string) (string, error) {
	phoneKey := utils.NormalizePhone(senderID)
	trimmed := strings.TrimSpace(text)

	isCommand := strings.HasPrefix(trimmed, "/")
	command := ""
	if isCommand {
		command = strings.ToLower(strings.Fields(trimmed)[0])
	}

	intent := s.classifier.Classify(trimmed)

	// Only a message that explicitly asks about linking is allowed to poll;
	// ordinary conversation takes the single-read fast path.
	statusCheck := intent == domain.IntentLinkStatus || command == "/vincular"

	link, err := s.link.Resolve(ctx, phoneKey, statusCheck)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.LogError(ctx, err, "Link resolution failed", slog.String("phone_key", phoneKey))
		return s.composer.TryAgain(), nil
	}

	if link == nil || !link.IsVerified {
		return s.handleUnlinked(ctx, phoneKey)
	}

	s.LogDebug(ctx, "Message routed",
		slog.String("phone_key", phoneKey),
		slog.String("intent", string(intent)),
		slog.Bool("command", isCommand))

	if isCommand {
		return s.handleCommand(ctx, link, trimmed, command)
	}
	return s.handleIntent(ctx, link, intent, trimmed)
}

// handleUnlinked issues (or reuses) a verification code for a sender that
// has no verified link yet.
func (s *routerService) handleUnlinked(ctx context.Context, phoneKey string) (string, error) {
	code, alreadyLinked, err := s.link.EnsureVerification(ctx, phoneKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue verification", slog.String("phone_key", phoneKey))
		return s.composer.TryAgain(), nil
	}
	if alreadyLinked {
		// The fast path saw a stale unverified row; the store has since
		// converged. Treat as linked.
		return s.composer.AlreadyLinked(), nil
	}
	return s.composer.VerificationInstructions(code), nil
}

// handleIntent dispatches a classified free-text message for a linked user.
func (s *routerService) handleIntent(ctx context.Context, link *domain.AccountLink, intent domain.Intent, text string) (string, error) {
	ownerID := link.AccountID

	switch intent {
	case domain.IntentGreeting:
		return s.composer.Greeting(), nil

	case domain.IntentExpense:
		parsed, err := s.recorder.RecordExpenseText(ctx, ownerID, text)
		if err != nil {
			return s.composeRecordingError(ctx, err), nil
		}
		return s.composer.ExpenseConfirmation(parsed), nil

	case domain.IntentBalance:
		accounts, err := s.reporting.BalanceSummary(ctx, ownerID)
		if err != nil {
			return s.composer.TryAgain(), nil
		}
		return s.composer.Balance(accounts), nil

	case domain.IntentCategories:
		categories, err := s.reporting.CategorySummary(ctx, ownerID)
		if err != nil {
			return s.composer.TryAgain(), nil
		}
		return s.composer.Categories(categories), nil

	case domain.IntentReport:
		report, err := s.reporting.MonthlyReport(ctx, ownerID, s.now())
		if err != nil {
			return s.composer.TryAgain(), nil
		}
		return s.composer.Report(report), nil

	case domain.IntentLinkStatus:
		return s.composer.LinkStatus(link), nil

	default:
		return s.composer.Help(), nil
	}
}

// handleCommand executes a slash command for a linked user, bypassing
// free-text classification.
func (s *routerService) handleCommand(ctx context.Context, link *domain.AccountLink, text, command string) (string, error) {
	ownerID := link.AccountID
	fields := strings.Fields(text)

	switch command {
	case "/vincular":
		return s.composer.LinkStatus(link), nil

	case "/saldo":
		accounts, err := s.reporting.BalanceSummary(ctx, ownerID)
		if err != nil {
			return s.composer.TryAgain(), nil
		}
		return s.composer.Balance(accounts), nil

	case "/categorias":
		categories, err := s.reporting.CategorySummary(ctx, ownerID)
		if err != nil {
			return s.composer.TryAgain(), nil
		}
		return s.composer.Categories(categories), nil

	case "/gasto", "/receita":
		if len(fields) < 3 {
			return s.composer.Help(), nil
		}
		kind := domain.KindExpense
		if command == "/receita" {
			kind = domain.KindIncome
		}
		description := strings.Join(fields[2:], " ")
		parsed, err := s.recorder.RecordSimple(ctx, ownerID, kind, fields[1], description)
		if err != nil {
			return s.composeRecordingError(ctx, err), nil
		}
		return s.composer.ExpenseConfirmation(parsed), nil

	default:
		return s.composer.Help(), nil
	}
}

// composeRecordingError maps extraction failures to user guidance. Input
// problems become clarification prompts; anything else is the generic
// "try again".
func (s *routerService) composeRecordingError(ctx context.Context, err error) string {
	var missingCategory *MissingCategoryError
	switch {
	case errors.Is(err, ErrNoAmount):
		return s.composer.ClarifyAmount()
	case errors.Is(err, ErrNoFundingAccounts):
		return s.composer.NoFundingAccounts()
	case errors.As(err, &missingCategory):
		return s.composer.ClarifyCategory(missingCategory)
	default:
		s.LogError(ctx, err, "Transaction recording failed")
		return s.composer.TryAgain()
	}
}
