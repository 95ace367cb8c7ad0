package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/puzzle"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool
	visualize  bool

	config *puzzle.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve Advent of Code 2022 puzzle days",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with per-day parameters and expected answers")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log search statistics at debug level")
	root.PersistentFlags().BoolVar(&a.visualize, "visualize", false, "draw the final state when writing to a terminal")

	root.AddCommand(newRunCmd(a), newCheckCmd(), newListCmd())

	return root
}

// setup installs the logger and loads the optional config file.
func (a *app) setup(stderr io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if a.configPath == "" {
		return nil
	}
	cfg, err := puzzle.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg
	slog.Debug("config loaded", "path", a.configPath, "days", len(cfg.Days))

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
