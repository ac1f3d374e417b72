package services_test

import (
	"context"
	"strings"
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

// MockLinkService is a mock type for the LinkSvcFacade interface
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) Resolve(ctx context.Context, phoneKey string, statusCheck bool) (*domain.AccountLink, error) {
	args := m.Called(ctx, phoneKey, statusCheck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLink), args.Error(1)
}

func (m *MockLinkService) EnsureVerification(ctx context.Context, phoneKey string) (string, bool, error) {
	args := m.Called(ctx, phoneKey)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockLinkService) VerifyLink(ctx context.Context, phoneKey, code, accountID string) (*domain.AccountLink, error) {
	args := m.Called(ctx, phoneKey, code, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLink), args.Error(1)
}

func (m *MockLinkService) GetLink(ctx context.Context, phoneKey string) (*domain.AccountLink, error) {
	args := m.Called(ctx, phoneKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLink), args.Error(1)
}

// MockRecorderService is a mock type for the TransactionRecorderSvc interface
type MockRecorderService struct {
	mock.Mock
}

func (m *MockRecorderService) RecordExpenseText(ctx context.Context, ownerID, text string) (*domain.ParsedTransaction, error) {
	args := m.Called(ctx, ownerID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedTransaction), args.Error(1)
}

func (m *MockRecorderService) RecordSimple(ctx context.Context, ownerID string, kind domain.CategoryKind, amount string, description string) (*domain.ParsedTransaction, error) {
	args := m.Called(ctx, ownerID, kind, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedTransaction), args.Error(1)
}

// MockReportingService is a mock type for the ReportingSvc interface
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) BalanceSummary(ctx context.Context, ownerID string) ([]domain.FundingAccount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundingAccount), args.Error(1)
}

func (m *MockReportingService) CategorySummary(ctx context.Context, ownerID string) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockReportingService) MonthlyReport(ctx context.Context, ownerID string, ref time.Time) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, ownerID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

// --- Test Suite Setup ---

type RouterServiceTestSuite struct {
	suite.Suite
	mockLink      *MockLinkService
	mockRecorder  *MockRecorderService
	mockReporting *MockReportingService
	service       portssvc.MessageRouterSvc

	verifiedLink *domain.AccountLink
}

func (suite *RouterServiceTestSuite) SetupTest() {
	suite.mockLink = new(MockLinkService)
	suite.mockRecorder = new(MockRecorderService)
	suite.mockReporting = new(MockReportingService)
	suite.service = services.NewRouterService(
		suite.mockLink,
		services.NewIntentClassifier(),
		suite.mockRecorder,
		suite.mockReporting,
		services.NewReplyComposer(),
	)

	suite.verifiedLink = &domain.AccountLink{
		PhoneKey:   "5511987654321",
		AccountID:  "owner-1",
		IsVerified: true,
	}
}

// --- Test Cases ---

func (suite *RouterServiceTestSuite) TestHandleMessage_UnlinkedGetsVerificationCode() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(nil, nil).Once()
	suite.mockLink.On("EnsureVerification", ctx, "5511987654321").Return("123456", false, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321@s.whatsapp.net", "oi")

	suite.Require().NoError(err)
	suite.Contains(reply, "123456")
	suite.Contains(reply, "não está vinculado")
	suite.mockLink.AssertExpectations(suite.T())
}

func (suite *RouterServiceTestSuite) TestHandleMessage_PendingLinkRepeatsSameCode() {
	ctx := context.Background()
	pending := &domain.AccountLink{PhoneKey: "5511987654321", VerificationCode: "123456", IsVerified: false}

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(pending, nil).Once()
	suite.mockLink.On("EnsureVerification", ctx, "5511987654321").Return("123456", false, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "oi")

	suite.Require().NoError(err)
	suite.Contains(reply, "123456")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_LinkStatusIntentPolls() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", true).Return(suite.verifiedLink, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "meu número está vinculado?")

	suite.Require().NoError(err)
	suite.Contains(reply, "vinculado")
	suite.mockLink.AssertCalled(suite.T(), "Resolve", ctx, "5511987654321", true)
}

func (suite *RouterServiceTestSuite) TestHandleMessage_VincularCommandPolls() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", true).Return(suite.verifiedLink, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "/vincular")

	suite.Require().NoError(err)
	suite.Contains(reply, "vinculado")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_OrdinaryTextDoesNotPoll() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "bom dia")

	suite.Require().NoError(err)
	suite.Contains(reply, "Olá")
	suite.mockLink.AssertCalled(suite.T(), "Resolve", ctx, "5511987654321", false)
}

func (suite *RouterServiceTestSuite) TestHandleMessage_ExpenseRecorded() {
	ctx := context.Background()
	parsed := &domain.ParsedTransaction{
		Amount:         decimal.NewFromFloat(20.50),
		FundingAccount: domain.FundingAccount{Name: "Nubank"},
		Category:       domain.Category{Name: "Uber", Kind: domain.KindExpense},
	}

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()
	suite.mockRecorder.On("RecordExpenseText", ctx, "owner-1", "gastei 20,50 no nubank em uber").
		Return(parsed, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "gastei 20,50 no nubank em uber")

	suite.Require().NoError(err)
	suite.Contains(reply, "Gasto registrado")
	suite.Contains(reply, "R$ 20,50")
	suite.Contains(reply, "Uber")
	suite.Contains(reply, "Nubank")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_ExpenseMissingAmountAsksClarification() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()
	suite.mockRecorder.On("RecordExpenseText", ctx, "owner-1", mock.Anything).
		Return(nil, services.ErrNoAmount).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "gastei no mercado")

	suite.Require().NoError(err)
	suite.Contains(reply, "valor")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_ExpenseMissingCategoryListsOptions() {
	ctx := context.Background()
	missing := &services.MissingCategoryError{
		Amount: decimal.NewFromFloat(42),
		Kind:   domain.KindExpense,
		Categories: []domain.Category{
			{Name: "Mercado", Kind: domain.KindExpense},
			{Name: "Transporte", Kind: domain.KindExpense},
		},
	}

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()
	suite.mockRecorder.On("RecordExpenseText", ctx, "owner-1", mock.Anything).
		Return(nil, missing).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "gastei 42 com presentes")

	suite.Require().NoError(err)
	suite.Contains(reply, "Mercado")
	suite.Contains(reply, "Transporte")
	suite.Contains(reply, "R$ 42,00")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_BalanceIntent() {
	ctx := context.Background()
	accounts := []domain.FundingAccount{
		{Name: "Carteira", Balance: decimal.NewFromFloat(100.00)},
		{Name: "Nubank", Balance: decimal.NewFromFloat(50.25)},
	}

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()
	suite.mockReporting.On("BalanceSummary", ctx, "owner-1").Return(accounts, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "qual meu saldo?")

	suite.Require().NoError(err)
	suite.Contains(reply, "Carteira")
	suite.Contains(reply, "R$ 100,00")
	suite.Contains(reply, "Total: R$ 150,25")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_ReportIntent() {
	ctx := context.Background()
	report := &domain.MonthlyReport{
		Year:          2025,
		Month:         time.March,
		TotalIncome:   decimal.NewFromInt(3000),
		TotalExpenses: decimal.NewFromInt(700),
		HasEntries:    true,
		TopCategories: []domain.CategoryTotal{
			{Name: "Mercado", Amount: decimal.NewFromInt(600), Percent: decimal.RequireFromString("85.7")},
		},
	}

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()
	suite.mockReporting.On("MonthlyReport", ctx, "owner-1", mock.AnythingOfType("time.Time")).
		Return(report, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "me manda o relatório")

	suite.Require().NoError(err)
	suite.Contains(reply, "março/2025")
	suite.Contains(reply, "Mercado")
	suite.Contains(reply, "85.7%")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_UnknownIntentShowsHelp() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "xyzzy")

	suite.Require().NoError(err)
	suite.Contains(reply, "/gasto")
	suite.Contains(reply, "/saldo")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_GastoCommand() {
	ctx := context.Background()
	parsed := &domain.ParsedTransaction{
		Amount:         decimal.NewFromFloat(30),
		FundingAccount: domain.FundingAccount{Name: "Carteira"},
		Category:       domain.Category{Name: "Mercado", Kind: domain.KindExpense},
	}

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()
	suite.mockRecorder.On("RecordSimple", ctx, "owner-1", domain.KindExpense, "30", "compras mercado").
		Return(parsed, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "/gasto 30 compras mercado")

	suite.Require().NoError(err)
	suite.Contains(reply, "Gasto registrado")
	suite.mockRecorder.AssertExpectations(suite.T())
}

func (suite *RouterServiceTestSuite) TestHandleMessage_GastoCommandMissingArgsShowsHelp() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(suite.verifiedLink, nil).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "/gasto 30")

	suite.Require().NoError(err)
	suite.Contains(reply, "Comandos disponíveis")
	suite.mockRecorder.AssertNotCalled(suite.T(), "RecordSimple",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterServiceTestSuite) TestHandleMessage_StoreErrorYieldsTryAgain() {
	ctx := context.Background()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(nil, assert.AnError).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "oi")

	suite.Require().NoError(err, "store failures must not surface as handler errors")
	suite.Contains(strings.ToLower(reply), "tente novamente")
}

func (suite *RouterServiceTestSuite) TestHandleMessage_ContextCancelledPropagates() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite.mockLink.On("Resolve", ctx, "5511987654321", false).Return(nil, context.Canceled).Once()

	reply, err := suite.service.HandleMessage(ctx, "5511987654321", "oi")

	suite.Require().Error(err)
	suite.Empty(reply)
	suite.ErrorIs(err, context.Canceled)
}

func TestRouterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RouterServiceTestSuite))
}
