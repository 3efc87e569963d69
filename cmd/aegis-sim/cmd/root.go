// Package cmd implements the aegis-sim command-line surface: discovering,
// configuring, validating, and running engagement scenarios.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aegis-sim/aegis/pkg/logger"
)

var (
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "aegis-sim",
	Short: "Layered air defense engagement simulation CLI",
	Long: `aegis-sim runs deterministic, tick-driven engagements between
incoming targets and a sensor-cued, proportional-navigation-guided
interceptor force.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)
	viper.AutomaticEnv()
}
