package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	for _, n := range []int{1, 12, 64} {
		pw, err := Generate(n, Lower|Upper|Digits|Symbols)
		require.NoError(t, err)
		assert.Len(t, pw, n)
	}
}

func TestGenerateDigitsOnly(t *testing.T) {
	pw, err := Generate(12, Digits)
	require.NoError(t, err)
	require.Len(t, pw, 12)
	for _, r := range pw {
		assert.Contains(t, digitSet, string(r))
	}
}

func TestGenerateRespectsClasses(t *testing.T) {
	pw, err := Generate(200, Lower|Digits)
	require.NoError(t, err)
	for _, r := range pw {
		assert.NotContains(t, upperSet, string(r))
		assert.NotContains(t, symbolSet, string(r))
	}
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(0, Digits)
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = Generate(-3, Digits)
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = Generate(8, 0)
	assert.ErrorIs(t, err, ErrNoClasses)
}

func TestParseClasses(t *testing.T) {
	cs, err := ParseClasses("luds")
	require.NoError(t, err)
	assert.Equal(t, Lower|Upper|Digits|Symbols, cs)

	cs, err = ParseClasses("D")
	require.NoError(t, err)
	assert.Equal(t, Digits, cs)

	_, err = ParseClasses("lx")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestClassesString(t *testing.T) {
	assert.Equal(t, "lower+digits", (Lower | Digits).String())
	assert.Equal(t, "none", Classes(0).String())
}

func TestStrength(t *testing.T) {
	tests := []struct {
		pw      string
		score   int
		verdict string
	}{
		{"", 0, "Very Weak"},
		{"abc", 1, "Weak"},
		{"abcdefgh", 2, "Fair"},
		{"Abcdefg1", 4, "Strong"},
		{"Abcdef1!", 5, "Strong"},
	}
	for _, tt := range tests {
		res := Strength(tt.pw)
		assert.Equal(t, tt.score, res.Score, "password %q", tt.pw)
		assert.Equal(t, tt.verdict, res.Verdict, "password %q", tt.pw)
	}
}

func TestStrengthHints(t *testing.T) {
	res := Strength("abc")
	require.NotEmpty(t, res.Hints)
	joined := strings.Join(res.Hints, "\n")
	assert.Contains(t, joined, "at least 8 characters")
	assert.Contains(t, joined, "uppercase")
	assert.Contains(t, joined, "digits")
	assert.Contains(t, joined, "symbols")
}
