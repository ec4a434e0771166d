package model

import "time"

// Secret is a stored credential entry. Password is kept verbatim.
type Secret struct {
	ID         int64
	Name       string
	Email      string
	URL        *string
	CategoryID *int64 // advisory reference to Category.ID; may dangle
	Password   string
	CreatedAt  time.Time
}

// SecretView is a Secret joined with the name of its category. CategoryName
// is nil when CategoryID is nil or does not match an existing category.
type SecretView struct {
	Secret
	CategoryName *string
}
