package services

import (
	"strings"

	"github.com/SamuelRomaoF/financas-bot/internal/core/domain"
	portssvc "github.com/SamuelRomaoF/financas-bot/internal/core/ports/services"
)

// intentRule pairs one intent with the keywords that select it.
type intentRule struct {
	intent   domain.Intent
	keywords []string
}

// intentRules is evaluated top to bottom, first match wins. Order is
// significant: a message can satisfy several keyword sets at once (e.g. an
// expense sentence that also mentions "saldo"), and the earlier rule takes
// precedence. Matching is plain substring containment on the lower-cased
// text, not word-boundary matching.
var intentRules = []intentRule{
	{domain.IntentGreeting, []string{"bom dia", "boa tarde", "boa noite", "olá", "ola", "oi"}},
	{domain.IntentExpense, []string{"gastei", "paguei", "comprei"}},
	{domain.IntentBalance, []string{"saldo", "quanto tenho", "quanto eu tenho"}},
	{domain.IntentCategories, []string{"categorias", "categoria"}},
	{domain.IntentReport, []string{"relatório", "relatorio", "resumo", "extrato"}},
	{domain.IntentLinkStatus, []string{"vinculado", "vinculada", "vincular", "verificado", "status da conta"}},
}

// intentClassifier implements the IntentClassifierSvc interface.
type intentClassifier struct {
	rules []intentRule
}

// NewIntentClassifier creates the keyword-based intent classifier.
func NewIntentClassifier() portssvc.IntentClassifierSvc {
	return &intentClassifier{rules: intentRules}
}

// Ensure intentClassifier implements the IntentClassifierSvc interface
var _ portssvc.IntentClassifierSvc = (*intentClassifier)(nil)

// Classify maps free-text message content to one intent.
func (c *intentClassifier) Classify(text string) domain.Intent {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.intent
			}
		}
	}
	return domain.IntentUnknown
}
