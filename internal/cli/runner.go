package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/kata/internal/calc"
	"github.com/idilsaglam/kata/internal/config"
	"github.com/idilsaglam/kata/internal/grades"
	"github.com/idilsaglam/kata/internal/guess"
	"github.com/idilsaglam/kata/internal/logging"
	"github.com/idilsaglam/kata/internal/passgen"
	"github.com/idilsaglam/kata/internal/store/jsonstore"
	"github.com/idilsaglam/kata/internal/todo"
	"github.com/idilsaglam/kata/internal/ui"
)

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, cfg config.Config) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	log := logging.New(cfg.Debug)
	cmd, a := args[0], args[1:]
	log.Debug("dispatch", "cmd", cmd, "args", a)

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "guess":
		return doGuess(cfg)

	case "todo":
		return doTodo(a, log)

	case "calc":
		return doCalc()

	case "grades":
		return doGrades(cfg)

	case "passwd":
		return doPasswd(a, cfg)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`kata - five little console programs

Usage:
  kata <subcommand> [args]

Subcommands:
  guess                    Number-guessing game
  todo add <title...>      Add a new todo (title can be multiple words)
  todo ls                  List todos (interactive TUI)
  todo done <index>        Toggle done for todo at 1-based index
  todo rm <index>          Remove todo at 1-based index
  calc                     Calculator with history
  grades                   Grade-book manager
  passwd [-n len] [-classes luds] [-check pw]   Password generator

Examples:
  kata guess
  kata todo add "Buy milk"
  kata todo ls
  kata passwd -n 16 -classes lud
`)
}

// ---------------------------------------------------
// guess / calc / grades: hand off to the session loops
// ---------------------------------------------------

func doGuess(cfg config.Config) int {
	g := cfg.Guess
	if err := guess.Run(g.Min, g.Max, g.MaxAttempts); err != nil {
		ui.Fail("guess: " + err.Error())
		return 1
	}
	return 0
}

func doCalc() int {
	if err := calc.RunLoop(os.Stdin, os.Stdout); err != nil {
		ui.Fail("calc: " + err.Error())
		return 1
	}
	return 0
}

func doGrades(cfg config.Config) int {
	if err := grades.RunLoop(os.Stdin, os.Stdout, cfg.Grades.Min, cfg.Grades.Max); err != nil {
		ui.Fail("grades: " + err.Error())
		return 1
	}
	return 0
}

// ---------------------------------------------------
// passwd: one-shot with flags
// ---------------------------------------------------

func doPasswd(args []string, cfg config.Config) int {
	fs := flag.NewFlagSet("passwd", flag.ContinueOnError)
	length := fs.Int("n", cfg.Password.Length, "password length")
	spec := fs.String("classes", cfg.Password.Classes, "character classes: l, u, d, s")
	check := fs.String("check", "", "grade an existing password instead of generating")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *check != "" {
		printStrength(*check)
		return 0
	}

	cs, err := passgen.ParseClasses(*spec)
	if err != nil {
		ui.Fail("passwd: " + err.Error())
		return 2
	}
	pw, err := passgen.Generate(*length, cs)
	if err != nil {
		ui.Fail("passwd: " + err.Error())
		return 2
	}
	fmt.Println(pw)
	printStrength(pw)
	return 0
}

func printStrength(pw string) {
	res := passgen.Strength(pw)
	lines := []string{
		fmt.Sprintf("strength: %s  %s", res.Verdict,
			ui.ProgressBar(res.Score, passgen.MaxScore, 10)),
	}
	for _, h := range res.Hints {
		lines = append(lines, ui.C(ui.Current().Muted, "- "+h))
	}
	ui.Panel(lines)
}

// ---------------------------------------------------
// todo subcommands (local JSON CRUD + TUI)
// ---------------------------------------------------

func doTodo(args []string, log logging.Logger) int {
	if len(args) == 0 {
		ui.Fail("usage: kata todo <add|ls|done|rm>")
		return 2
	}
	path, err := jsonstore.DefaultPath()
	if err != nil {
		ui.Fail("store: " + err.Error())
		return 1
	}
	st := jsonstore.New(path, log)

	sub, a := args[0], args[1:]
	switch sub {
	case "ls":
		return doTodoList(st)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: kata todo add <title...>")
			return 2
		}
		return doTodoAdd(st, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: kata todo done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doTodoToggle(st, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: kata todo rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doTodoRemove(st, n)
	}

	ui.Fail("unknown todo subcommand: " + sub)
	return 2
}

func doTodoList(st *jsonstore.Store) int {
	items, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	// The interactive TUI saves on quit if anything changed.
	if err := todo.RunInteractive(items, st); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doTodoAdd(st *jsonstore.Store, title string) int {
	items, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	l := todo.NewList(items)
	if _, err := l.Add(title, todo.PriorityMedium); err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	if err := st.Save(l.Items()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("added")
	return 0
}

func doTodoToggle(st *jsonstore.Store, userIndex int) int {
	items, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	l := todo.NewList(items)
	if _, err := l.Toggle(userIndex); err != nil {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", l.Len(), userIndex))
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: run `kata todo ls` to see valid indexes"))
		return 2
	}
	if err := st.Save(l.Items()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("toggled")
	return 0
}

func doTodoRemove(st *jsonstore.Store, userIndex int) int {
	items, err := st.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	l := todo.NewList(items)
	if _, err := l.Remove(userIndex); err != nil {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", l.Len(), userIndex))
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: run `kata todo ls` to see valid indexes"))
		return 2
	}
	if err := st.Save(l.Items()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("removed")
	return 0
}
