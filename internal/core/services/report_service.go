package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portsrepo "github.com/SamuelRomaoF/financas-bot/internal/core/ports/repositories"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportTopCategories caps how many expense categories the monthly report lists.
const reportTopCategories = 5

// reportService implements the ReportingSvc interface.
type reportService struct {
	BaseService
	accountRepo  portsrepo.FundingAccountReader
	categoryRepo portsrepo.CategoryReader
	txnRepo      portsrepo.TransactionReader
}

// NewReportService creates a new reporting service.
func NewReportService(
	accountRepo portsrepo.FundingAccountReader,
	categoryRepo portsrepo.CategoryReader,
	txnRepo portsrepo.TransactionReader,
) portssvc.ReportingSvc {
	return &reportService{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
	}
}

// Ensure reportService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportService)(nil)

// BalanceSummary returns the owner's funding accounts in store order.
func (s *reportService) BalanceSummary(ctx context.Context, ownerID string) ([]domain.FundingAccount, error) {
	accounts, err := s.accountRepo.ListFundingAccountsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funding accounts for balance", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list funding accounts: %w", err)
	}
	return accounts, nil
}

// CategorySummary returns the owner's categories in store order.
func (s *reportService) CategorySummary(ctx context.Context, ownerID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// MonthlyReport aggregates the calendar month containing ref: totals for
// income and expenses plus the top expense categories with their share of
// the month's expenses.
func (s *reportService) MonthlyReport(ctx context.Context, ownerID string, ref time.Time) (*domain.MonthlyReport, error) {
	from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	// Day zero of the next month is the last day of this one.
	to := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location())

	entries, err := s.txnRepo.ListMonthEntries(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list month entries",
			slog.String("owner_id", ownerID),
			slog.String("from", from.Format("2006-01-02")),
			slog.String("to", to.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to list month entries: %w", err)
	}

	report := &domain.MonthlyReport{
		Year:          ref.Year(),
		Month:         ref.Month(),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	if len(entries) == 0 {
		return report, nil
	}
	report.HasEntries = true

	sums := make(map[string]decimal.Decimal)
	order := []string{}
	for _, e := range entries {
		if e.Kind == domain.KindIncome {
			report.TotalIncome = report.TotalIncome.Add(e.Amount)
			continue
		}
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
		if _, seen := sums[e.CategoryName]; !seen {
			order = append(order, e.CategoryName)
		}
		sums[e.CategoryName] = sums[e.CategoryName].Add(e.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(order))
	for _, name := range order {
		totals = append(totals, domain.CategoryTotal{Name: name, Amount: sums[name]})
	}
	// Stable sort keeps first-seen order among equal amounts.
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	if len(totals) > reportTopCategories {
		totals = totals[:reportTopCategories]
	}

	// Percentage only when there is something to divide by.
	if report.TotalExpenses.IsPositive() {
		for i := range totals {
			totals[i].Percent = totals[i].Amount.
				Div(report.TotalExpenses).
				Mul(decimal.NewFromInt(100)).
				Round(1)
		}
	}
	report.TopCategories = totals

	s.LogDebug(ctx, "Monthly report aggregated",
		slog.String("owner_id", ownerID),
		slog.Int("entries", len(entries)),
		slog.Int("categories", len(totals)))
	return report, nil
}
