package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/days"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range days.All() {
				mark := ""
				if d.Render != nil {
					mark = " (visualize)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", d, mark); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
