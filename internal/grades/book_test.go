package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScoreValidatesRange(t *testing.T) {
	b := NewBook(0, 100)

	err := b.AddScore("Ana", 150)
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	_, err = b.Average("Ana")
	assert.ErrorIs(t, err, ErrUnknownStudent, "rejected score must not create the student")

	require.NoError(t, b.AddScore("Ana", 90))
	avg, err := b.Average("Ana")
	require.NoError(t, err)
	assert.Equal(t, 90.0, avg)

	assert.ErrorIs(t, b.AddScore("Ana", -1), ErrScoreOutOfRange)
	avg, _ = b.Average("Ana")
	assert.Equal(t, 90.0, avg, "rejected score must not be recorded")
}

func TestAddScoreRejectsEmptyName(t *testing.T) {
	b := NewBook(0, 100)
	assert.ErrorIs(t, b.AddScore("  ", 50), ErrEmptyName)
}

func TestAverage(t *testing.T) {
	b := NewBook(0, 100)
	b.AddScore("Bob", 80)
	b.AddScore("Bob", 90)
	b.AddScore("Bob", 100)

	avg, err := b.Average("Bob")
	require.NoError(t, err)
	assert.InDelta(t, 90.0, avg, 1e-9)

	_, err = b.Average("nobody")
	assert.ErrorIs(t, err, ErrUnknownStudent)
}

func TestStats(t *testing.T) {
	b := NewBook(0, 100)

	_, err := b.Stats()
	assert.ErrorIs(t, err, ErrNoScores)

	b.AddScore("Ana", 70)
	b.AddScore("Ana", 90)
	b.AddScore("Bob", 50)

	st, err := b.Stats()
	require.NoError(t, err)
	assert.Equal(t, 50.0, st.Min)
	assert.Equal(t, 90.0, st.Max)
	assert.InDelta(t, 70.0, st.Mean, 1e-9)
	assert.Equal(t, 3, st.Count)
}

func TestStudentsKeepInsertionOrder(t *testing.T) {
	b := NewBook(0, 100)
	b.AddScore("Zoe", 10)
	b.AddScore("Ana", 20)
	b.AddScore("Zoe", 30)

	assert.Equal(t, []string{"Zoe", "Ana"}, b.Students())

	ss, ok := b.Scores("Zoe")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 30}, ss)
}
