package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/days"
	"github.com/katalvlaran/statespace/puzzle"
)

func newCheckCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Solve every embedded sample and compare with the known answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcomes, err := puzzle.CheckAll(cmd.Context(), days.All(), jobs)
			if rerr := puzzle.ReportChecks(cmd.OutOrStdout(), outcomes); rerr != nil {
				return rerr
			}

			return err
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "days solved concurrently (0 for unbounded)")

	return cmd
}
