package models

// CategoryKind is the database representation of a category's direction.
type CategoryKind string

// Category mirrors the categories table.
type Category struct {
	CategoryID string
	OwnerID    string
	Name       string
	Kind       CategoryKind
}
