package commands

import (
	"github.com/spf13/cobra"
)

// run: summarise every package, one line each.
func runCmd() *cobra.Command {
	var (
		file            string
		continueOnError bool
		metricsTextfile string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Summarise the reference packages or a JSON package file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config
			if cmd.Flags().Changed("file") {
				cfg.PackagesFile = file
			}
			if cmd.Flags().Changed("metrics-textfile") {
				cfg.MetricsTextfile = metricsTextfile
			}
			if cmd.Flags().Changed("continue-on-error") {
				cfg.ContinueOnError = continueOnError
			}
			if err := rewire(cmd, cfg); err != nil {
				return err
			}

			packages, err := wire.LoadPackages()
			if err != nil {
				return err
			}
			_, runErr := wire.Tracker.Run(cmd.OutOrStdout(), packages)
			if err := wire.FlushMetrics(); err != nil {
				wire.Logger.Error().Err(err).Msg("metrics not written")
			}
			return runErr
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with packages (default: built-in reference packages)")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "skip failing packages instead of aborting")
	cmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")
	return cmd
}
