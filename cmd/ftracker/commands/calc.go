package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// calc <CODE> <values...>: summarise one package.
func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "calc <CODE> <value>...",
		Short:   "Summarise a single package, e.g. calc RUN 15000 1 75",
		Args:    cobra.MinimumNArgs(1),
		Example: "  ftracker calc SWM 720 1 80 25 40",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := packageFromArgs(args)
			if err != nil {
				return err
			}
			line, err := wire.Tracker.Process(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
