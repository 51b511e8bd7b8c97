package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ftracker/internal/app"
	"ftracker/internal/domain"
)

var (
	envFile  string
	logLevel string
	wire     *app.Wire
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ftracker",
		Short:        "Workout statistics from fitness tracker sensor packages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			return rewire(cmd, cfg)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env if present)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	root.AddCommand(runCmd(), calcCmd(), fingerprintCmd())
	return root
}

// rewire rebuilds the dependency graph from cfg.
func rewire(cmd *cobra.Command, cfg app.Config) error {
	w, err := app.NewWire(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	wire = w
	return nil
}

// packageFromArgs parses "<CODE> <v1> <v2> ..." into a package.
func packageFromArgs(args []string) (domain.Package, error) {
	p := domain.Package{Code: domain.Code(args[0]), Values: make([]float64, 0, len(args)-1)}
	for i, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return domain.Package{}, fmt.Errorf("value %d %q: %w", i+1, arg, err)
		}
		p.Values = append(p.Values, v)
	}
	return p, nil
}
