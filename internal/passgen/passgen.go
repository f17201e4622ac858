package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Classes is the set of enabled character classes.
type Classes uint8

const (
	Lower Classes = 1 << iota
	Upper
	Digits
	Symbols
)

const (
	lowerSet  = "abcdefghijklmnopqrstuvwxyz"
	upperSet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitSet  = "0123456789"
	symbolSet = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var (
	ErrBadLength    = errors.New("length must be positive")
	ErrNoClasses    = errors.New("at least one character class must be enabled")
	ErrUnknownClass = errors.New("unknown character class")
)

// ParseClasses reads a compact spec like "lud": l lower, u upper,
// d digits, s symbols.
func ParseClasses(spec string) (Classes, error) {
	var cs Classes
	for _, r := range strings.ToLower(spec) {
		switch r {
		case 'l':
			cs |= Lower
		case 'u':
			cs |= Upper
		case 'd':
			cs |= Digits
		case 's':
			cs |= Symbols
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownClass, r)
		}
	}
	return cs, nil
}

func (c Classes) charset() string {
	var b strings.Builder
	if c&Lower != 0 {
		b.WriteString(lowerSet)
	}
	if c&Upper != 0 {
		b.WriteString(upperSet)
	}
	if c&Digits != 0 {
		b.WriteString(digitSet)
	}
	if c&Symbols != 0 {
		b.WriteString(symbolSet)
	}
	return b.String()
}

// String renders the enabled classes for display.
func (c Classes) String() string {
	var parts []string
	if c&Lower != 0 {
		parts = append(parts, "lower")
	}
	if c&Upper != 0 {
		parts = append(parts, "upper")
	}
	if c&Digits != 0 {
		parts = append(parts, "digits")
	}
	if c&Symbols != 0 {
		parts = append(parts, "symbols")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Generate draws each character independently and uniformly from the
// union of the enabled class sets.
func Generate(length int, cs Classes) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	chars := cs.charset()
	if chars == "" {
		return "", ErrNoClasses
	}
	n := big.NewInt(int64(len(chars)))
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		out[i] = chars[idx.Int64()]
	}
	return string(out), nil
}
