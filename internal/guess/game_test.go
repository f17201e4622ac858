package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessOutcomes(t *testing.T) {
	g := NewWithSecret(50, 0)

	assert.Equal(t, TooLow, g.Guess(10))
	assert.Equal(t, TooHigh, g.Guess(90))
	assert.Equal(t, 2, g.Attempts())
	assert.False(t, g.Over())

	assert.Equal(t, Correct, g.Guess(50))
	assert.Equal(t, 3, g.Attempts())
	assert.True(t, g.Won())
	assert.True(t, g.Over())
}

func TestGuessAfterWinDoesNotCount(t *testing.T) {
	g := NewWithSecret(7, 0)
	require.Equal(t, Correct, g.Guess(7))

	assert.Equal(t, Correct, g.Guess(7))
	assert.Equal(t, 1, g.Attempts(), "attempts must not grow after the game is over")
}

func TestAttemptBudget(t *testing.T) {
	g := NewWithSecret(5, 2)

	g.Guess(1)
	assert.False(t, g.Lost())
	g.Guess(2)
	assert.True(t, g.Lost())
	assert.True(t, g.Over())
	assert.False(t, g.Won())
	assert.Equal(t, 5, g.Secret())

	// exhausted game swallows further guesses
	g.Guess(5)
	assert.Equal(t, 2, g.Attempts())
	assert.False(t, g.Won())
}

func TestUnlimitedAttempts(t *testing.T) {
	g := NewWithSecret(3, 0)
	for i := 0; i < 100; i++ {
		g.Guess(1000)
	}
	assert.False(t, g.Lost())
	assert.Equal(t, 100, g.Attempts())
}

func TestNewSecretWithinBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		g := New(10, 20, 0)
		require.GreaterOrEqual(t, g.Secret(), 10)
		require.LessOrEqual(t, g.Secret(), 20)
	}
}
