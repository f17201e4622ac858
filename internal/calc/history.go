package calc

import (
	"fmt"
	"strconv"
	"time"
)

// Record is one completed calculation. Records are immutable once
// appended.
type Record struct {
	A      float64
	Op     Op
	B      float64
	Result float64
	At     time.Time
}

func newRecord(a float64, op Op, b, result float64) Record {
	return Record{A: a, Op: op, B: b, Result: result, At: time.Now()}
}

// String renders the record the way the history view prints it,
// e.g. "5 + 3 = 8 (14:03:12)".
func (r Record) String() string {
	return fmt.Sprintf("%s %s %s = %s (%s)",
		num(r.A), r.Op, num(r.B), num(r.Result), r.At.Format("15:04:05"))
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
