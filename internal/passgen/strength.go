package passgen

import (
	"strings"
	"unicode"
)

// MaxScore is the number of criteria the strength check scores against.
const MaxScore = 5

var verdicts = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// StrengthResult grades a password: one point per satisfied criterion
// (length ≥ 8 plus presence of each character class), with one hint per
// miss.
type StrengthResult struct {
	Score   int
	Verdict string
	Hints   []string
}

// Strength checks a password against the five criteria.
func Strength(pw string) StrengthResult {
	var res StrengthResult
	check := func(ok bool, hint string) {
		if ok {
			res.Score++
		} else {
			res.Hints = append(res.Hints, hint)
		}
	}

	check(len(pw) >= 8, "use at least 8 characters")
	check(strings.ContainsFunc(pw, unicode.IsLower), "add lowercase letters")
	check(strings.ContainsFunc(pw, unicode.IsUpper), "add uppercase letters")
	check(strings.ContainsFunc(pw, unicode.IsDigit), "add digits")
	check(strings.ContainsAny(pw, symbolSet), "add symbols")

	idx := res.Score
	if idx >= len(verdicts) {
		idx = len(verdicts) - 1
	}
	res.Verdict = verdicts[idx]
	return res
}
