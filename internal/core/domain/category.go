package domain

// CategoryKind partitions categories (and the transactions recorded
// against them) into money-out and money-in.
type CategoryKind string

const (
	KindExpense CategoryKind = "expense"
	KindIncome  CategoryKind = "income"
)

// Category is a user-defined label used to classify transactions.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary key (UUID)
	OwnerID    string       `json:"ownerID"`    // FK -> dashboard account
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
}
