package model

// PasswordPolicy selects the character classes and length of a generated
// password. Lowercase letters are always part of the pool.
type PasswordPolicy struct {
	Length           int
	IncludeUppercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
}

// DefaultPasswordPolicy returns a 16-character policy with every class enabled.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Length:           16,
		IncludeUppercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}
