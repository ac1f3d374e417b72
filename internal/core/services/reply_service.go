package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	"github.com/SamuelRomaoF/financas-bot/internal/utils"
	"github.com/shopspring/decimal"
)

// ReplyComposer builds every user-facing message. All text is Brazilian
// Portuguese and never carries internal identifiers or error detail.
type ReplyComposer struct{}

// NewReplyComposer creates the composer.
func NewReplyComposer() *ReplyComposer {
	return &ReplyComposer{}
}

// Greeting is the answer to a salutation: a short menu of what the bot does.
func (r *ReplyComposer) Greeting() string {
	return "Olá! 👋 Eu sou seu assistente de finanças.\n\n" +
		"Você pode me dizer coisas como:\n" +
		"• \"gastei 25,90 no mercado\" para registrar um gasto\n" +
		"• \"saldo\" para ver o saldo das suas contas\n" +
		"• \"categorias\" para listar suas categorias\n" +
		"• \"relatório\" para o resumo do mês\n\n" +
		"Digite /help para ver todos os comandos."
}

// Help lists the slash commands. Also the fallback for unknown intents.
func (r *ReplyComposer) Help() string {
	return "Comandos disponíveis:\n" +
		"/vincular — vincular este número à sua conta\n" +
		"/saldo — saldo das suas contas\n" +
		"/categorias — suas categorias\n" +
		"/gasto <valor> <descrição> — registrar um gasto\n" +
		"/receita <valor> <descrição> — registrar uma receita\n" +
		"/help — esta mensagem\n\n" +
		"Ou escreva naturalmente, por exemplo: \"gastei 15,00 no uber\"."
}

// VerificationInstructions tells an unlinked user how to finish linking.
func (r *ReplyComposer) VerificationInstructions(code string) string {
	return fmt.Sprintf("Seu número ainda não está vinculado a uma conta.\n\n"+
		"Código de verificação: *%s*\n\n"+
		"Acesse o painel, abra Configurações > Vincular WhatsApp e informe o código acima. "+
		"Depois me envie \"vincular\" para confirmar.", code)
}

// AlreadyLinked confirms an existing verified link.
func (r *ReplyComposer) AlreadyLinked() string {
	return "Este número já está vinculado à sua conta. ✅"
}

// LinkStatus describes the current linking state.
func (r *ReplyComposer) LinkStatus(link *domain.AccountLink) string {
	switch {
	case link == nil:
		return "Este número ainda não está vinculado. Envie /vincular para começar."
	case link.IsVerified:
		return "Tudo certo! Seu número está vinculado à sua conta. ✅"
	default:
		return fmt.Sprintf("A vinculação ainda está pendente. "+
			"Informe o código *%s* no painel para concluir.", link.VerificationCode)
	}
}

// Balance renders one line per funding account plus the total.
func (r *ReplyComposer) Balance(accounts []domain.FundingAccount) string {
	if len(accounts) == 0 {
		return "Você ainda não cadastrou nenhuma conta. Cadastre uma conta no painel para começar."
	}

	var b strings.Builder
	b.WriteString("💰 Saldo das suas contas:\n\n")
	total := decimal.Zero
	for _, acc := range accounts {
		fmt.Fprintf(&b, "• %s: %s\n", acc.Name, utils.FormatBRL(acc.Balance))
		total = total.Add(acc.Balance)
	}
	fmt.Fprintf(&b, "\nTotal: %s", utils.FormatBRL(total))
	return b.String()
}

// Categories renders the expense and income category lists; an empty
// partition is omitted.
func (r *ReplyComposer) Categories(categories []domain.Category) string {
	var expenses, incomes []string
	for _, c := range categories {
		switch c.Kind {
		case domain.KindIncome:
			incomes = append(incomes, c.Name)
		default:
			expenses = append(expenses, c.Name)
		}
	}

	if len(expenses) == 0 && len(incomes) == 0 {
		return "Você ainda não tem categorias. Crie suas categorias no painel."
	}

	var b strings.Builder
	b.WriteString("🏷️ Suas categorias:\n")
	if len(expenses) > 0 {
		b.WriteString("\nDespesas:\n")
		for _, name := range expenses {
			fmt.Fprintf(&b, "• %s\n", name)
		}
	}
	if len(incomes) > 0 {
		b.WriteString("\nReceitas:\n")
		for _, name := range incomes {
			fmt.Fprintf(&b, "• %s\n", name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Report renders the monthly summary.
func (r *ReplyComposer) Report(report *domain.MonthlyReport) string {
	if !report.HasEntries {
		return "Você ainda não tem transações neste mês."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Resumo de %s/%d:\n\n", monthNamePT(report.Month), report.Year)
	fmt.Fprintf(&b, "Receitas: %s\n", utils.FormatBRL(report.TotalIncome))
	fmt.Fprintf(&b, "Despesas: %s\n", utils.FormatBRL(report.TotalExpenses))
	fmt.Fprintf(&b, "Resultado: %s\n", utils.FormatBRL(report.TotalIncome.Sub(report.TotalExpenses)))

	if len(report.TopCategories) > 0 {
		b.WriteString("\nMaiores despesas:\n")
		for _, ct := range report.TopCategories {
			fmt.Fprintf(&b, "• %s: %s (%s%%)\n", ct.Name, utils.FormatBRL(ct.Amount), ct.Percent.String())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ExpenseConfirmation echoes what was recorded.
func (r *ReplyComposer) ExpenseConfirmation(parsed *domain.ParsedTransaction) string {
	if parsed.Category.Kind == domain.KindIncome {
		return fmt.Sprintf("Receita registrada! ✅\n%s em \"%s\" na conta %s.",
			utils.FormatBRL(parsed.Amount), parsed.Category.Name, parsed.FundingAccount.Name)
	}
	return fmt.Sprintf("Gasto registrado! ✅\n%s em \"%s\" na conta %s.",
		utils.FormatBRL(parsed.Amount), parsed.Category.Name, parsed.FundingAccount.Name)
}

// ClarifyAmount asks the user to restate the value.
func (r *ReplyComposer) ClarifyAmount() string {
	return "Não consegui identificar o valor. 🤔\n" +
		"Tente algo como: \"gastei 25,90 no mercado\"."
}

// ClarifyCategory lists the candidate categories and a worked example with
// the amount that was already understood.
func (r *ReplyComposer) ClarifyCategory(e *MissingCategoryError) string {
	label := "despesa"
	if e.Kind == domain.KindIncome {
		label = "receita"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Entendi o valor de %s, mas não identifiquei a categoria da %s. 🤔\n",
		utils.FormatBRL(e.Amount), label)

	if len(e.Categories) == 0 {
		b.WriteString("Você ainda não tem categorias cadastradas. Crie suas categorias no painel.")
		return b.String()
	}

	b.WriteString("\nSuas categorias:\n")
	for _, c := range e.Categories {
		fmt.Fprintf(&b, "• %s\n", c.Name)
	}
	fmt.Fprintf(&b, "\nPor exemplo: \"gastei %s em %s\"",
		e.Amount.StringFixed(2), strings.ToLower(e.Categories[0].Name))
	return b.String()
}

// NoFundingAccounts asks the user to register an account first.
func (r *ReplyComposer) NoFundingAccounts() string {
	return "Você ainda não tem nenhuma conta cadastrada. " +
		"Cadastre uma conta no painel antes de registrar transações."
}

// TryAgain is the generic answer for store failures.
func (r *ReplyComposer) TryAgain() string {
	return "Tive um problema ao acessar seus dados. 😕 Tente novamente em instantes."
}

// monthNamePT converts a month to its Portuguese name.
func monthNamePT(m time.Month) string {
	names := [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
	if m < time.January || m > time.December {
		return ""
	}
	return names[m-1]
}
