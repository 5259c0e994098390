package commands

// Root command: loads configuration and logging before any subcommand runs.
// Registers one subcommand per plotting script plus all and inspect.

import (
	"fmt"

	"moby-plots/internal/features/plots"
	"moby-plots/internal/infra/config"
	logging "moby-plots/internal/infra/log"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "moby-plots",
	Short: "Render plots of Moby simulation output",
	Long: `moby-plots renders the fixed figures for the Moby simulation experiments:
the conservative advancement step histogram and the kinetic energy traces of
the rotating and spinning box. Each subcommand reads one data file from the
work directory and writes one PNG next to it.`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logging.Sync() },
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	for _, s := range plots.All() {
		rootCmd.AddCommand(newScriptCmd(s))
	}
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(inspectCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}
