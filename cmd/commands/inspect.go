package commands

import (
	"fmt"
	"io"

	"moby-plots/internal/features/plots"
	logging "moby-plots/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inspectCmd = &cobra.Command{
	Use:       "inspect <script>",
	Short:     "Print the plot data of a script without writing the image",
	Long:      `Load a script's input and print its bin counts or point count and ranges. No image is written.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: scriptNames(),
	RunE:      runInspect,
}

func scriptNames() []string {
	var names []string
	for _, s := range plots.All() {
		names = append(names, s.Name)
	}
	return names
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := plots.Lookup(args[0])
	if err != nil {
		return err
	}

	_, res, err := plots.Build(s, cfg.App.WorkDir)
	if err != nil {
		logging.LogFailure("Inspect failed", zap.String("script", s.Name), zap.Error(err))
		return err
	}

	logging.LogInfo("Inspected", zap.String("script", s.Name), zap.Int("rows", res.Rows))
	printResult(cmd.OutOrStdout(), s, res)
	return nil
}

func printResult(w io.Writer, s plots.Script, res *plots.Result) {
	fmt.Fprintf(w, "script: %s (%s)\n", s.Name, s.Kind)
	fmt.Fprintf(w, "rows:   %d\n", res.Rows)
	fmt.Fprintf(w, "x:      [%g, %g]\n", res.X.Min, res.X.Max)

	switch s.Kind {
	case plots.KindHistogram:
		fmt.Fprintf(w, "bins:   %d\n", len(res.Bins))
		for _, b := range res.Bins {
			fmt.Fprintf(w, "  [%g, %g)\t%d\n", b.Min, b.Max, b.Count)
		}
	case plots.KindLine:
		fmt.Fprintf(w, "y:      [%g, %g]\n", res.Y.Min, res.Y.Max)
		fmt.Fprintf(w, "points: %d\n", len(res.Points))
	}
}
