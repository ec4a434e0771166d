package model

// Category is a named grouping label attachable to secrets.
type Category struct {
	ID   int64
	Name string
}

// DefaultCategories are seeded once, on the first initialization of an empty vault.
var DefaultCategories = []string{"Uncategorized", "Email", "Social Media", "Banking", "Work"}
