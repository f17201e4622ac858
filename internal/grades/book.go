package grades

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStudent  = errors.New("unknown student")
	ErrScoreOutOfRange = errors.New("score out of range")
	ErrNoScores        = errors.New("no scores recorded")
	ErrEmptyName       = errors.New("empty student name")
)

// Book maps student names to their recorded scores. Insertion order of
// students is kept so reports come out stable.
type Book struct {
	min, max float64
	scores   map[string][]float64
	order    []string
}

// NewBook bounds accepted scores to the inclusive [min, max] range.
func NewBook(min, max float64) *Book {
	return &Book{min: min, max: max, scores: make(map[string][]float64)}
}

// AddScore validates before recording; an out-of-range score leaves the
// student untouched, even if it would have been their first entry.
func (b *Book) AddScore(name string, score float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if score < b.min || score > b.max {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrScoreOutOfRange, score, b.min, b.max)
	}
	if _, seen := b.scores[name]; !seen {
		b.order = append(b.order, name)
	}
	b.scores[name] = append(b.scores[name], score)
	return nil
}

// Average returns the arithmetic mean of one student's scores.
func (b *Book) Average(name string) (float64, error) {
	ss, ok := b.scores[strings.TrimSpace(name)]
	if !ok || len(ss) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStudent, name)
	}
	return mean(ss), nil
}

// Students lists names in first-seen order.
func (b *Book) Students() []string { return b.order }

// Scores returns one student's recorded scores in entry order.
func (b *Book) Scores(name string) ([]float64, bool) {
	ss, ok := b.scores[strings.TrimSpace(name)]
	return ss, ok
}

// Stats aggregates every recorded score across all students.
type Stats struct {
	Min   float64
	Max   float64
	Mean  float64
	Count int
}

func (b *Book) Stats() (Stats, error) {
	var all []float64
	for _, name := range b.order {
		all = append(all, b.scores[name]...)
	}
	if len(all) == 0 {
		return Stats{}, ErrNoScores
	}
	st := Stats{Min: all[0], Max: all[0], Count: len(all)}
	for _, s := range all {
		if s < st.Min {
			st.Min = s
		}
		if s > st.Max {
			st.Max = s
		}
	}
	st.Mean = mean(all)
	return st, nil
}

func mean(ss []float64) float64 {
	var sum float64
	for _, s := range ss {
		sum += s
	}
	return sum / float64(len(ss))
}
