package calc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/kata/internal/ui"
)

// RunLoop drives the calculator REPL. It reads `<a> <op> <b>` lines plus
// the history/clear/quit commands, and survives every malformed input.
func RunLoop(r io.Reader, w io.Writer) error {
	c := New()

	fmt.Fprint(w, ui.PanelRender([]string{
		ui.C(ui.Current().Title, "Calculator"),
		"Enter: <a> <op> <b>   with op one of + - * / ^",
		"Commands: history, clear, quit",
	}))

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "calc> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit", "q":
			return sc.Err()
		case "history":
			printHistory(w, c)
			continue
		case "clear":
			c.ClearHistory()
			fmt.Fprintln(w, ui.C(ui.Current().Muted, "history cleared"))
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			fmt.Fprintln(w, ui.C(ui.Current().Error, "expected: <a> <op> <b>"))
			continue
		}
		a, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			fmt.Fprintln(w, ui.C(ui.Current().Error, "not a number: "+fields[0]))
			continue
		}
		op, err := ParseOp(fields[1])
		if err != nil {
			fmt.Fprintln(w, ui.C(ui.Current().Error, err.Error()))
			continue
		}
		b, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			fmt.Fprintln(w, ui.C(ui.Current().Error, "not a number: "+fields[2]))
			continue
		}

		result, err := c.Eval(a, op, b)
		if err != nil {
			fmt.Fprintln(w, ui.C(ui.Current().Error, err.Error()))
			continue
		}
		fmt.Fprintln(w, ui.C(ui.Current().Success, "= "+num(result)))
	}
	return sc.Err()
}

func printHistory(w io.Writer, c *Calculator) {
	records := c.History()
	if len(records) == 0 {
		fmt.Fprintln(w, ui.C(ui.Current().Muted, "no calculations yet"))
		return
	}
	lines := make([]string, 0, len(records))
	for i, rec := range records {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, rec))
	}
	fmt.Fprint(w, ui.PanelRender(lines))
}
