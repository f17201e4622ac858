package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/kata/internal/cli"
	"github.com/idilsaglam/kata/internal/config"
	"github.com/idilsaglam/kata/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "UI theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.UI.Theme = *theme
	}
	if *noColor {
		cfg.UI.NoColor = true
	}
	ui.SetColorForcing(false, cfg.UI.NoColor)
	ui.SetTheme(cfg.UI.Theme)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cfg)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
