package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
	"github.com/SamuelRomaoF/financas-bot/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockAccounts   *MockFundingAccountRepository
	mockCategories *MockCategoryRepository
	mockTxns       *MockTransactionRepository
	service        portssvc.ReportingSvc
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockAccounts = new(MockFundingAccountRepository)
	suite.mockCategories = new(MockCategoryRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.service = services.NewReportService(suite.mockAccounts, suite.mockCategories, suite.mockTxns)
}

func expense(name string, amount float64) domain.MonthEntry {
	return domain.MonthEntry{Amount: decimal.NewFromFloat(amount), Kind: domain.KindExpense, CategoryName: name}
}

func income(name string, amount float64) domain.MonthEntry {
	return domain.MonthEntry{Amount: decimal.NewFromFloat(amount), Kind: domain.KindIncome, CategoryName: name}
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestMonthlyReport_WindowCoversCalendarMonth() {
	ctx := context.Background()
	ref := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	expectedFrom := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	expectedTo := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", expectedFrom, expectedTo).
		Return([]domain.MonthEntry{}, nil).Once()

	_, err := suite.service.MonthlyReport(ctx, "owner-1", ref)

	suite.Require().NoError(err)
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestMonthlyReport_EmptyMonth() {
	ctx := context.Background()
	ref := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", mock.Anything, mock.Anything).
		Return([]domain.MonthEntry{}, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, "owner-1", ref)

	suite.Require().NoError(err)
	suite.False(report.HasEntries)
	suite.True(report.TotalIncome.IsZero())
	suite.True(report.TotalExpenses.IsZero())
	suite.Empty(report.TopCategories)
}

func (suite *ReportServiceTestSuite) TestMonthlyReport_Totals() {
	ctx := context.Background()
	ref := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.MonthEntry{
		income("Salário", 3000),
		expense("Mercado", 400),
		expense("Transporte", 100),
		expense("Mercado", 200),
	}

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", mock.Anything, mock.Anything).
		Return(entries, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, "owner-1", ref)

	suite.Require().NoError(err)
	suite.True(report.HasEntries)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(3000)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(700)))

	suite.Require().Len(report.TopCategories, 2)
	suite.Equal("Mercado", report.TopCategories[0].Name)
	suite.True(report.TopCategories[0].Amount.Equal(decimal.NewFromInt(600)))
	suite.Equal("85.7", report.TopCategories[0].Percent.String())
	suite.Equal("Transporte", report.TopCategories[1].Name)
	suite.Equal("14.3", report.TopCategories[1].Percent.String())
}

func (suite *ReportServiceTestSuite) TestMonthlyReport_TopFiveCap() {
	ctx := context.Background()
	ref := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.MonthEntry{
		expense("A", 10), expense("B", 60), expense("C", 30),
		expense("D", 50), expense("E", 20), expense("F", 40),
	}

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", mock.Anything, mock.Anything).
		Return(entries, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, "owner-1", ref)

	suite.Require().NoError(err)
	suite.Require().Len(report.TopCategories, 5)
	names := make([]string, 0, 5)
	for _, ct := range report.TopCategories {
		names = append(names, ct.Name)
	}
	suite.Equal([]string{"B", "D", "F", "C", "E"}, names)
}

// Categories with equal totals keep the order they were first seen in.
func (suite *ReportServiceTestSuite) TestMonthlyReport_StableOrderOnTies() {
	ctx := context.Background()
	ref := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.MonthEntry{
		expense("Primeiro", 50),
		expense("Segundo", 50),
		expense("Terceiro", 50),
	}

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", mock.Anything, mock.Anything).
		Return(entries, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, "owner-1", ref)

	suite.Require().NoError(err)
	suite.Require().Len(report.TopCategories, 3)
	suite.Equal("Primeiro", report.TopCategories[0].Name)
	suite.Equal("Segundo", report.TopCategories[1].Name)
	suite.Equal("Terceiro", report.TopCategories[2].Name)
}

// A month with only income must not divide by zero when computing shares.
func (suite *ReportServiceTestSuite) TestMonthlyReport_IncomeOnlyMonth() {
	ctx := context.Background()
	ref := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	entries := []domain.MonthEntry{income("Salário", 3000)}

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", mock.Anything, mock.Anything).
		Return(entries, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, "owner-1", ref)

	suite.Require().NoError(err)
	suite.True(report.HasEntries)
	suite.True(report.TotalExpenses.IsZero())
	suite.Empty(report.TopCategories)
}

func (suite *ReportServiceTestSuite) TestMonthlyReport_RepoError() {
	ctx := context.Background()

	suite.mockTxns.On("ListMonthEntries", ctx, "owner-1", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	report, err := suite.service.MonthlyReport(ctx, "owner-1", time.Now())

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportServiceTestSuite) TestBalanceSummary_Success() {
	ctx := context.Background()
	accounts := []domain.FundingAccount{{FundingAccountID: "fa-1", Name: "Carteira"}}

	suite.mockAccounts.On("ListFundingAccountsByOwner", ctx, "owner-1").Return(accounts, nil).Once()

	result, err := suite.service.BalanceSummary(ctx, "owner-1")

	suite.Require().NoError(err)
	suite.Equal(accounts, result)
}

func (suite *ReportServiceTestSuite) TestCategorySummary_RepoError() {
	ctx := context.Background()

	suite.mockCategories.On("ListCategoriesByOwner", ctx, "owner-1").Return(nil, assert.AnError).Once()

	result, err := suite.service.CategorySummary(ctx, "owner-1")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
