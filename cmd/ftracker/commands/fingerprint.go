package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ftracker/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <CODE> <value>...",
		Short: "Print a package fingerprint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := packageFromArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(p))
			return nil
		},
	}
	return cmd
}
