package commands

import (
	"moby-plots/internal/features/plots"
	logging "moby-plots/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newScriptCmd wraps one fixed script as a no-argument subcommand.
func newScriptCmd(s plots.Script) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name,
		Short: s.Short,
		Long:  s.Short + ".\nReads " + s.Input + " and writes " + s.Output + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(s)
		},
	}
}

func runScript(s plots.Script) error {
	if _, err := plots.Run(s, cfg.App.WorkDir); err != nil {
		logging.LogFailure("Plot failed", zap.String("script", s.Name), zap.Error(err))
		return err
	}
	return nil
}
