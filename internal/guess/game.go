package guess

import "math/rand/v2"

// Outcome classifies one guess against the secret.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// Game holds one guessing session: the secret is fixed at creation and
// every valid guess bumps the attempt counter exactly once.
type Game struct {
	secret      int
	min, max    int
	attempts    int
	maxAttempts int // 0 = unlimited
	won         bool
}

// New picks a secret uniformly from the inclusive [min, max] range.
func New(min, max, maxAttempts int) *Game {
	return &Game{
		secret:      min + rand.IntN(max-min+1),
		min:         min,
		max:         max,
		maxAttempts: maxAttempts,
	}
}

// NewWithSecret fixes the secret instead of drawing one.
func NewWithSecret(secret, maxAttempts int) *Game {
	return &Game{secret: secret, min: secret, max: secret, maxAttempts: maxAttempts}
}

// Guess evaluates n. Calls after the game is over are ignored and report
// the terminal outcome.
func (g *Game) Guess(n int) Outcome {
	if g.Over() {
		switch {
		case g.won:
			return Correct
		case n < g.secret:
			return TooLow
		default:
			return TooHigh
		}
	}
	g.attempts++
	switch {
	case n == g.secret:
		g.won = true
		return Correct
	case n < g.secret:
		return TooLow
	default:
		return TooHigh
	}
}

func (g *Game) Attempts() int { return g.attempts }
func (g *Game) Won() bool     { return g.won }

// Lost reports whether the attempt budget ran out before a correct guess.
func (g *Game) Lost() bool {
	return !g.won && g.maxAttempts > 0 && g.attempts >= g.maxAttempts
}

func (g *Game) Over() bool { return g.won || g.Lost() }

// Secret is only meant for the final reveal on a lost game.
func (g *Game) Secret() int { return g.secret }

// Bounds returns the inclusive range the secret was drawn from.
func (g *Game) Bounds() (int, int) { return g.min, g.max }

// MaxAttempts returns the attempt budget, 0 when unlimited.
func (g *Game) MaxAttempts() int { return g.maxAttempts }
