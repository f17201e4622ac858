package grades

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/kata/internal/ui"
)

// RunLoop drives the grade-book REPL. Scores outside the configured
// range are rejected before anything is recorded.
func RunLoop(r io.Reader, w io.Writer, min, max float64) error {
	b := NewBook(min, max)

	fmt.Fprint(w, ui.PanelRender([]string{
		ui.C(ui.Current().Title, "Grade book"),
		fmt.Sprintf("Scores accepted in [%g, %g]", min, max),
		"Commands: add <name> <score>, avg <name>, stats, report, quit",
	}))

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "grades> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit", "q":
			return sc.Err()

		case "add":
			if len(args) < 2 {
				fmt.Fprintln(w, ui.C(ui.Current().Error, "usage: add <name> <score>"))
				continue
			}
			// everything before the last field is the name, so
			// "add Ana Maria 90" works
			name := strings.Join(args[:len(args)-1], " ")
			score, err := strconv.ParseFloat(args[len(args)-1], 64)
			if err != nil {
				fmt.Fprintln(w, ui.C(ui.Current().Error, "not a number: "+args[len(args)-1]))
				continue
			}
			if err := b.AddScore(name, score); err != nil {
				fmt.Fprintln(w, ui.C(ui.Current().Error, err.Error()))
				continue
			}
			fmt.Fprintln(w, ui.C(ui.Current().Success, fmt.Sprintf("recorded %g for %s", score, name)))

		case "avg":
			if len(args) == 0 {
				fmt.Fprintln(w, ui.C(ui.Current().Error, "usage: avg <name>"))
				continue
			}
			name := strings.Join(args, " ")
			avg, err := b.Average(name)
			if err != nil {
				fmt.Fprintln(w, ui.C(ui.Current().Error, err.Error()))
				continue
			}
			fmt.Fprintln(w, ui.C(ui.Current().Accent, fmt.Sprintf("%s: %.1f", name, avg)))

		case "stats":
			st, err := b.Stats()
			if err != nil {
				fmt.Fprintln(w, ui.C(ui.Current().Muted, "no data"))
				continue
			}
			fmt.Fprint(w, ui.PanelRender([]string{
				fmt.Sprintf("scores: %d", st.Count),
				fmt.Sprintf("min:    %.1f", st.Min),
				fmt.Sprintf("max:    %.1f", st.Max),
				fmt.Sprintf("mean:   %.1f", st.Mean),
			}))

		case "report":
			students := b.Students()
			if len(students) == 0 {
				fmt.Fprintln(w, ui.C(ui.Current().Muted, "no data"))
				continue
			}
			lines := make([]string, 0, len(students))
			for _, name := range students {
				ss, _ := b.Scores(name)
				avg, _ := b.Average(name)
				lines = append(lines, fmt.Sprintf("%-16s %v (avg %.1f)", name, ss, avg))
			}
			fmt.Fprint(w, ui.PanelRender(lines))

		default:
			fmt.Fprintln(w, ui.C(ui.Current().Error, "unknown command: "+cmd))
		}
	}
	return sc.Err()
}
