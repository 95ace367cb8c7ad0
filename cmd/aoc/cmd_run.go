package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/days"
	"github.com/katalvlaran/statespace/puzzle"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <day> [input]",
		Short: "Solve one day",
		Long: `Solve one day. Without an input file the embedded sample is solved
and checked against its known answers. With a file, parameters and
expected answers come from the config file when present.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day number %q: %w", args[0], err)
			}
			d, err := days.Lookup(n)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			return a.run(cmd.OutOrStdout(), d, path)
		},
	}
}

func (a *app) run(out io.Writer, d puzzle.Day, path string) error {
	input, params := d.Sample, d.SampleParams
	var (
		got puzzle.Solution
		err error
	)
	if path == "" {
		got, err = puzzle.SelfCheck(d)
	} else {
		if input, err = puzzle.LoadInput(path); err != nil {
			return err
		}
		dc := a.config.Day(d.Number)
		params = d.InputParams.Merge(dc.Params)
		if got, err = puzzle.Run(d, input, dc.Params); err == nil {
			err = puzzle.Verify(d, got, dc.Want)
		}
	}
	if err != nil {
		return err
	}
	if err = puzzle.Report(out, d, got); err != nil {
		return err
	}

	if !a.visualize || d.Render == nil {
		return nil
	}
	if !isTerminal(out) {
		slog.Warn("visualize ignored: output is not a terminal")
		return nil
	}
	pic, err := d.Render(input, params)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, pic)

	return err
}
