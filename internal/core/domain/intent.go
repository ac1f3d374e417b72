package domain

// Intent is the closed classification of a free-text message's purpose.
// It is derived per message and never persisted.
type Intent string

const (
	IntentGreeting   Intent = "GREETING"
	IntentExpense    Intent = "EXPENSE"
	IntentBalance    Intent = "BALANCE_QUERY"
	IntentCategories Intent = "CATEGORY_QUERY"
	IntentReport     Intent = "REPORT_QUERY"
	IntentLinkStatus Intent = "LINK_STATUS_QUERY"
	IntentUnknown    Intent = "UNKNOWN"
)
