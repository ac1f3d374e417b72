package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/apperrors"
	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// amountRegex matches the first integer-or-decimal token in a message.
// The decimal separator may be "," or ".".
var amountRegex = regexp.MustCompile(`\d+(?:[.,]\d{1,2})?`)

// numericTokenRegex identifies tokens that are purely numeric and therefore
// never category candidates.
var numericTokenRegex = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)

// categoryStopWords are common verbs, prepositions and payment-method nouns
// that never name a category.
var categoryStopWords = map[string]struct{}{
	"gastei": {}, "paguei": {}, "comprei": {}, "gasto": {}, "recebi": {},
	"de": {}, "do": {}, "da": {}, "dos": {}, "das": {},
	"no": {}, "na": {}, "nos": {}, "nas": {}, "em": {},
	"com": {}, "por": {}, "para": {}, "pra": {},
	"o": {}, "a": {}, "e": {}, "os": {}, "as": {}, "um": {}, "uma": {},
	"que": {}, "meu": {}, "minha": {},
	"reais": {}, "real": {}, "r$": {},
	"pix": {}, "dinheiro": {}, "cartão": {}, "cartao": {},
	"débito": {}, "debito": {}, "crédito": {}, "credito": {},
	"conta": {}, "hoje": {}, "ontem": {},
}

// ErrNoAmount indicates the message carried no parseable amount.
var ErrNoAmount = fmt.Errorf("%w: no amount found in message", apperrors.ErrValidation)

// ErrNoFundingAccounts indicates the user has no registered funding account
// to record transactions against.
var ErrNoFundingAccounts = fmt.Errorf("%w: no funding accounts registered", apperrors.ErrValidation)

// MissingCategoryError asks the user to restate the category. It carries
// the data the composer needs for the clarification prompt: the amount that
// was already parsed and the full list of candidate categories.
type MissingCategoryError struct {
	Amount     decimal.Decimal
	Kind       domain.CategoryKind
	Categories []domain.Category
}

func (e *MissingCategoryError) Error() string {
	return "no category matched the message"
}

func (e *MissingCategoryError) Unwrap() error {
	return apperrors.ErrValidation
}

// CategoryMatcher is the matching strategy used to resolve a message token
// against the user's categories. Injectable so the policy can be swapped or
// tested independently of store access.
type CategoryMatcher interface {
	// FindBestMatch returns the matching category for a token, or nil.
	FindBestMatch(candidates []domain.Category, token string) *domain.Category
}

// substringMatcher matches case-insensitively when the token contains the
// category name or the category name contains the token. When several
// candidates match the same token, the first in store order wins.
type substringMatcher struct{}

func (substringMatcher) FindBestMatch(candidates []domain.Category, token string) *domain.Category {
	token = strings.ToLower(token)
	for i := range candidates {
		name := strings.ToLower(candidates[i].Name)
		if strings.Contains(name, token) || strings.Contains(token, name) {
			return &candidates[i]
		}
	}
	return nil
}

// NewSubstringMatcher returns the default category matching strategy.
func NewSubstringMatcher() CategoryMatcher {
	return substringMatcher{}
}

// extractionService implements the TransactionRecorderSvc interface.
type extractionService struct {
	BaseService
	accountRepo  portsrepo.FundingAccountReader
	categoryRepo portsrepo.CategoryReader
	txnRepo      portsrepo.TransactionWriter
	matcher      CategoryMatcher
	now          func() time.Time
}

// ExtractionServiceOption is a functional option for configuring the extraction service
type ExtractionServiceOption func(*extractionService)

// WithCategoryMatcher overrides the category matching strategy.
func WithCategoryMatcher(m CategoryMatcher) ExtractionServiceOption {
	return func(s *extractionService) {
		s.matcher = m
	}
}

// WithClock overrides the clock used to date transactions.
func WithClock(now func() time.Time) ExtractionServiceOption {
	return func(s *extractionService) {
		s.now = now
	}
}

// NewExtractionService creates a new extraction service with the provided options
func NewExtractionService(
	accountRepo portsrepo.FundingAccountReader,
	categoryRepo portsrepo.CategoryReader,
	txnRepo portsrepo.TransactionWriter,
	options ...ExtractionServiceOption,
) portssvc.TransactionRecorderSvc {
	svc := &extractionService{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
		matcher:      substringMatcher{},
		now:          time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure extractionService implements the TransactionRecorderSvc interface
var _ portssvc.TransactionRecorderSvc = (*extractionService)(nil)

// RecordExpenseText parses an amount, a funding account and a category out
// of a free-text message and records the expense dated today.
func (s *extractionService) RecordExpenseText(ctx context.Context, ownerID, text string) (*domain.ParsedTransaction, error) {
	amount, err := parseAmount(text)
	if err != nil {
		return nil, err
	}
	return s.resolveAndRecord(ctx, ownerID, domain.KindExpense, amount, text)
}

// RecordSimple records a transaction for a slash command whose amount was
// already split out by the command parser.
func (s *extractionService) RecordSimple(ctx context.Context, ownerID string, kind domain.CategoryKind, amount string, description string) (*domain.ParsedTransaction, error) {
	value, err := decimal.NewFromString(strings.Replace(amount, ",", ".", 1))
	if err != nil {
		return nil, ErrNoAmount
	}
	return s.resolveAndRecord(ctx, ownerID, kind, value, description)
}

// resolveAndRecord resolves the funding account and category from the text,
// then inserts the transaction. The insert is the single terminal write and
// only happens after both lookups succeed.
func (s *extractionService) resolveAndRecord(ctx context.Context, ownerID string, kind domain.CategoryKind, amount decimal.Decimal, text string) (*domain.ParsedTransaction, error) {
	account, err := s.resolveFundingAccount(ctx, ownerID, text)
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, ownerID, kind, amount, text)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	txn := domain.Transaction{
		TransactionID:    uuid.NewString(),
		OwnerID:          ownerID,
		FundingAccountID: account.FundingAccountID,
		CategoryID:       category.CategoryID,
		Kind:             kind,
		Amount:           amount,
		Description:      strings.TrimSpace(text),
		OccurredAt:       today,
		CreatedAt:        now,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("owner_id", ownerID),
			slog.String("category_id", category.CategoryID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("owner_id", ownerID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(kind)),
		slog.String("amount", amount.String()))
	return &domain.ParsedTransaction{
		Amount:         amount,
		FundingAccount: *account,
		Category:       *category,
	}, nil
}

// resolveFundingAccount picks the first registered account whose name
// appears in the message; with no name match it defaults to the first
// registered account.
func (s *extractionService) resolveFundingAccount(ctx context.Context, ownerID, text string) (*domain.FundingAccount, error) {
	accounts, err := s.accountRepo.ListFundingAccountsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funding accounts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list funding accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoFundingAccounts
	}

	lowered := strings.ToLower(text)
	for i := range accounts {
		if strings.Contains(lowered, strings.ToLower(accounts[i].Name)) {
			return &accounts[i], nil
		}
	}
	return &accounts[0], nil
}

// resolveCategory finds the first non-stop-word, non-numeric token that
// matches one of the owner's categories of the requested kind.
func (s *extractionService) resolveCategory(ctx context.Context, ownerID string, kind domain.CategoryKind, amount decimal.Decimal, text string) (*domain.Category, error) {
	all, err := s.categoryRepo.ListCategoriesByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	candidates := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if c.Kind == kind {
			candidates = append(candidates, c)
		}
	}

	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, stop := categoryStopWords[token]; stop {
			continue
		}
		if numericTokenRegex.MatchString(token) {
			continue
		}
		if match := s.matcher.FindBestMatch(candidates, token); match != nil {
			return match, nil
		}
	}

	return nil, &MissingCategoryError{Amount: amount, Kind: kind, Categories: candidates}
}

// parseAmount extracts the first numeric token of the message as a decimal.
func parseAmount(text string) (decimal.Decimal, error) {
	raw := amountRegex.FindString(text)
	if raw == "" {
		return decimal.Zero, ErrNoAmount
	}
	value, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return decimal.Zero, ErrNoAmount
	}
	return value, nil
}
