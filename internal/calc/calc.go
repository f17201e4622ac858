package calc

import (
	"errors"
	"fmt"
	"math"
)

// Op is one of the supported binary operations.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpPow Op = "^"
)

var (
	ErrDivideByZero = errors.New("division by zero")
	ErrUnknownOp    = errors.New("unknown operator")
)

// ParseOp accepts the symbol or the word form.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+", "add":
		return OpAdd, nil
	case "-", "sub", "subtract":
		return OpSub, nil
	case "*", "x", "mul", "multiply":
		return OpMul, nil
	case "/", "div", "divide":
		return OpDiv, nil
	case "^", "pow", "power":
		return OpPow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Calculator evaluates expressions and keeps an append-only history.
// Failed evaluations never touch the history.
type Calculator struct {
	history []Record
}

func New() *Calculator { return &Calculator{} }

// Eval computes a op b and records the result on success.
func (c *Calculator) Eval(a float64, op Op, b float64) (float64, error) {
	var result float64
	switch op {
	case OpAdd:
		result = a + b
	case OpSub:
		result = a - b
	case OpMul:
		result = a * b
	case OpDiv:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		result = a / b
	case OpPow:
		result = math.Pow(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	c.history = append(c.history, newRecord(a, op, b, result))
	return result, nil
}

// History returns all records in insertion order.
func (c *Calculator) History() []Record { return c.history }

// ClearHistory empties the log; the only way records ever go away.
func (c *Calculator) ClearHistory() { c.history = nil }
