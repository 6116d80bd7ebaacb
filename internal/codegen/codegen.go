package codegen

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

const (
	// Alphabet is the character set for random short codes
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength is the default short code length
	DefaultLength = 6
	// MinCustomLength is the minimum custom code length
	MinCustomLength = 3
	// MaxCustomLength is the maximum custom code length
	MaxCustomLength = 20
)

var (
	// ErrInvalidCode is returned when a custom code violates the length or character rules
	ErrInvalidCode = errors.New("custom code must be 3-20 characters of letters, digits, dash or underscore")
	// ErrReservedCode is returned when a custom code collides with a reserved route
	ErrReservedCode = errors.New("custom code conflicts with a reserved endpoint")
)

// reservedCodes are route names a custom code must not shadow.
var reservedCodes = map[string]struct{}{
	"healthz": {},
	"readyz":  {},
	"stats":   {},
	"api":     {},
	"admin":   {},
	"shorten": {},
}

var customCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)

// Generator produces random short codes from a fixed alphabet
type Generator struct {
	alphabet string
	length   int
}

// NewGenerator creates a new Generator. Non-positive lengths fall back
// to DefaultLength.
func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{
		alphabet: Alphabet,
		length:   length,
	}
}

// Generate returns a fresh random code drawn uniformly from the
// alphabet using a cryptographically secure source.
func (g *Generator) Generate() (string, error) {
	result := make([]byte, g.length)
	max := big.NewInt(int64(len(g.alphabet)))

	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = g.alphabet[n.Int64()]
	}

	return string(result), nil
}

// Length returns the configured code length
func (g *Generator) Length() int {
	return g.length
}

// MaxCapacity returns the number of distinct codes of the configured length
func (g *Generator) MaxCapacity() uint64 {
	capacity := uint64(1)
	for i := 0; i < g.length; i++ {
		capacity *= uint64(len(g.alphabet))
	}
	return capacity
}

// ValidateCustomCode checks a caller-supplied code against the length,
// character set and reserved route rules.
func ValidateCustomCode(code string) error {
	if !customCodePattern.MatchString(code) {
		return ErrInvalidCode
	}
	if _, ok := reservedCodes[strings.ToLower(code)]; ok {
		return ErrReservedCode
	}
	return nil
}
