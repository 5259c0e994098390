package commands

import (
	"moby-plots/internal/features/plots"
	logging "moby-plots/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every plotting script in order",
	Long:  `Run steps, tuned and spin one after the other. Stops at the first failure.`,
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	scripts := plots.All()
	for _, s := range scripts {
		if err := runScript(s); err != nil {
			return err
		}
	}
	logging.LogSuccess("All plots saved", zap.Int("count", len(scripts)))
	return nil
}
