package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	enginesim "github.com/aegis-sim/aegis/cmd/aegis-engine/simulation"
	"github.com/aegis-sim/aegis/pkg/logger"
	"github.com/aegis-sim/aegis/pkg/simulation"
	"github.com/aegis-sim/aegis/pkg/utils"

	// Import to register the simulation
	_ "github.com/aegis-sim/aegis/cmd/aegis-engine/runner"
)

var (
	runSimName        string
	runScenarioPath   string
	runPreset         string
	runAAROutputDir   string
	runNonInteractive bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an engagement simulation",
	Long:  `Configure and run a registered simulation to completion or until interrupted`,
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&runSimName, "simulation", "s", "Layered Air Defense Engagement", "name of the simulation to run")
	runCmd.Flags().StringVarP(&runScenarioPath, "file", "f", "", "path to a scenario YAML file (uses the built-in default scenario when empty)")
	runCmd.Flags().StringVarP(&runPreset, "preset", "p", "", "name of a built-in scenario preset (see 'aegis-sim list --presets'); takes precedence over --file")
	runCmd.Flags().StringVarP(&runAAROutputDir, "aar-output-dir", "o", "aar-reports", "directory to write the After Action Report JSON into")
	runCmd.Flags().BoolVar(&runNonInteractive, "non-interactive", false, "skip interactive prompts and use defaults/env overrides")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if runNonInteractive {
		_ = os.Setenv("AEGIS_SIM_NONINTERACTIVE", "true")
	}

	simInfos, err := utils.DiscoverSimulations()
	if err != nil {
		return fmt.Errorf("failed to discover simulations: %w", err)
	}

	var simConfig *simulation.SimulationConfig
	for i := range simInfos {
		if simInfos[i].Config.Name == runSimName {
			simConfig = &simInfos[i].Config
			break
		}
	}
	if simConfig == nil {
		return fmt.Errorf("simulation %q not found; run 'aegis-sim list' to see available simulations", runSimName)
	}

	sim, err := simulation.DefaultRegistry.Get(runSimName)
	if err != nil {
		return fmt.Errorf("failed to load simulation: %w", err)
	}

	params, err := utils.PromptForParameters(simConfig.Parameters)
	if err != nil {
		return fmt.Errorf("failed to gather simulation parameters: %w", err)
	}

	if runPreset != "" {
		if _, err := enginesim.GetPreset(runPreset); err != nil {
			return fmt.Errorf("unknown preset %q; run 'aegis-sim list --presets' to see available presets", runPreset)
		}
		params["preset"] = runPreset
	} else if runScenarioPath != "" {
		params["scenario_path"] = runScenarioPath
	}
	if runAAROutputDir != "" {
		params["aar_output_dir"] = runAAROutputDir
	}

	if err := sim.Configure(params); err != nil {
		return fmt.Errorf("failed to configure simulation: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Warn("received interrupt signal, stopping simulation...")
		if err := sim.Stop(); err != nil {
			logger.Errorf("failed to stop simulation: %v", err)
		}
		cancel()
	}()

	logger.LogSection(fmt.Sprintf("Starting %s", sim.Name()))
	if err := sim.Run(ctx); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	logger.Success("simulation completed successfully")
	return nil
}
