package services_test

import (
	"testing"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	"github.com/SamuelRomaoF/financas-bot/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReplyComposer_Balance_Empty(t *testing.T) {
	composer := services.NewReplyComposer()
	reply := composer.Balance(nil)
	assert.Contains(t, reply, "não cadastrou nenhuma conta")
}

func TestReplyComposer_Balance_SumsAccounts(t *testing.T) {
	composer := services.NewReplyComposer()
	accounts := []domain.FundingAccount{
		{Name: "Carteira", Balance: decimal.NewFromFloat(100.00)},
		{Name: "Nubank", Balance: decimal.NewFromFloat(50.25)},
	}

	reply := composer.Balance(accounts)

	assert.Contains(t, reply, "Carteira: R$ 100,00")
	assert.Contains(t, reply, "Nubank: R$ 50,25")
	assert.Contains(t, reply, "Total: R$ 150,25")
}

func TestReplyComposer_Report_EmptyMonth(t *testing.T) {
	composer := services.NewReplyComposer()
	reply := composer.Report(&domain.MonthlyReport{Year: 2025, Month: time.March})
	assert.Contains(t, reply, "não tem transações")
}

func TestReplyComposer_LinkStatus(t *testing.T) {
	composer := services.NewReplyComposer()

	assert.Contains(t, composer.LinkStatus(nil), "/vincular")
	assert.Contains(t, composer.LinkStatus(&domain.AccountLink{IsVerified: true}), "vinculado")
	assert.Contains(t,
		composer.LinkStatus(&domain.AccountLink{IsVerified: false, VerificationCode: "123456"}),
		"123456")
}

func TestReplyComposer_Categories_Partitioned(t *testing.T) {
	composer := services.NewReplyComposer()
	categories := []domain.Category{
		{Name: "Mercado", Kind: domain.KindExpense},
		{Name: "Salário", Kind: domain.KindIncome},
	}

	reply := composer.Categories(categories)

	assert.Contains(t, reply, "Despesas:")
	assert.Contains(t, reply, "Mercado")
	assert.Contains(t, reply, "Receitas:")
	assert.Contains(t, reply, "Salário")
}

func TestReplyComposer_ClarifyCategory_NoCategories(t *testing.T) {
	composer := services.NewReplyComposer()
	reply := composer.ClarifyCategory(&services.MissingCategoryError{
		Amount: decimal.NewFromFloat(42),
		Kind:   domain.KindExpense,
	})
	assert.Contains(t, reply, "não tem categorias")
}
