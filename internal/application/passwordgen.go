package application

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ericfisherdev/passvault/internal/domain/model"
)

// Character classes for password generation.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ErrInvalidPasswordLength is returned for negative lengths.
var ErrInvalidPasswordLength = errors.New("invalid password length")

// PasswordGenerator draws passwords uniformly from a character pool using a
// cryptographically secure source. It keeps no state between calls.
type PasswordGenerator struct {
	random io.Reader
}

// NewPasswordGenerator returns a generator reading from crypto/rand.
func NewPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{random: rand.Reader}
}

// Generate returns a password of exactly policy.Length characters.
func (g *PasswordGenerator) Generate(policy model.PasswordPolicy) (string, error) {
	if policy.Length < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPasswordLength, policy.Length)
	}

	pool := characterPool(policy)
	poolSize := big.NewInt(int64(len(pool)))

	var b strings.Builder
	b.Grow(policy.Length)
	for i := 0; i < policy.Length; i++ {
		n, err := rand.Int(g.random, poolSize)
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		b.WriteByte(pool[n.Int64()])
	}

	return b.String(), nil
}

// characterPool assembles the eligible characters. Lowercase is always present,
// so the pool is never empty.
func characterPool(policy model.PasswordPolicy) string {
	pool := lowercaseChars
	if policy.IncludeUppercase {
		pool += uppercaseChars
	}
	if policy.IncludeNumbers {
		pool += digitChars
	}
	if policy.IncludeSymbols {
		pool += symbolChars
	}
	return pool
}
