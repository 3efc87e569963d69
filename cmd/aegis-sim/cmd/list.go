package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	enginesim "github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
	"github.com/aegis-sim/aegis/pkg/utils"

	// Import to register the simulation
	_ "github.com/aegis-sim/aegis/cmd/aegis-engine/runner"
)

var listPresets bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available simulations or scenario presets",
	Long:  `List all discoverable simulations with their descriptions, or the built-in scenario presets with --presets`,
	RunE:  listSimulations,
}

func init() {
	listCmd.Flags().BoolVar(&listPresets, "presets", false, "list built-in scenario presets instead of simulation kinds")
}

func listSimulations(cmd *cobra.Command, args []string) error {
	if listPresets {
		return listScenarioPresets()
	}

	simInfos, err := utils.DiscoverSimulations()
	if err != nil {
		return fmt.Errorf("failed to discover simulations: %w", err)
	}

	if len(simInfos) == 0 {
		fmt.Println("No simulations found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tVERSION\tCATEGORY\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t-------\t--------\t-----------")

	for _, info := range simInfos {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			info.Config.Name, info.Config.Version, info.Config.Category, info.Config.Description)
	}

	return w.Flush()
}

func listScenarioPresets() error {
	presets := enginesim.ListPresets()
	if len(presets) == 0 {
		fmt.Println("No scenario presets registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t-----------")

	for _, p := range presets {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
	}

	return w.Flush()
}
