package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aegis-sim/aegis/cmd/aegis-engine/config"
	enginesim "github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
	"github.com/aegis-sim/aegis/pkg/logger"
)

var validatePreset string

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario YAML file or preset without running it",
	Long:  `Load a scenario file (or built-in preset), apply schema validation, and report any errors without launching the engine`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  validateScenario,
}

func init() {
	validateCmd.Flags().StringVarP(&validatePreset, "preset", "p", "", "name of a built-in scenario preset to validate instead of a file")
}

func validateScenario(cmd *cobra.Command, args []string) error {
	var (
		scenario *config.Scenario
		err      error
		label    string
	)

	switch {
	case validatePreset != "":
		scenario, err = enginesim.GetPreset(validatePreset)
		label = fmt.Sprintf("preset %q", validatePreset)
	case len(args) == 1:
		scenario, err = config.LoadConfig(args[0])
		label = fmt.Sprintf("scenario %q", args[0])
	default:
		return fmt.Errorf("either a scenario file argument or --preset is required")
	}

	if err != nil {
		return fmt.Errorf("%s is invalid: %w", label, err)
	}
	if validatePreset != "" {
		if err := scenario.Validate(); err != nil {
			return fmt.Errorf("%s is invalid: %w", label, err)
		}
	}

	logger.Success(fmt.Sprintf("%s is valid", label))
	logger.LogKeyValue("dt_s", scenario.Sim.DtS)
	logger.LogKeyValue("t_max_s", scenario.Sim.TMaxS)
	logger.LogKeyValue("sensors", len(scenario.FriendlyForces.Sensors))
	logger.LogKeyValue("launchers", len(scenario.FriendlyForces.Launchers))
	logger.LogKeyValue("enemy_groups", len(scenario.EnemyForces.Groups))

	return nil
}
