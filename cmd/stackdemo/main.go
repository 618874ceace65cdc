// stackdemo runs a small game built on a stack of application states.
//
// Usage:
//
//	stackdemo run              - Open the game window
//	stackdemo config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - YAML or TOML config file (default: search order)
//	--log-level <lvl>   - Override logging.level from the config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/stackworld/config"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stackdemo",
	Short: "Stack-of-states demo game",
	Long: `stackdemo opens a window with a title screen. Each screen is an
application state with its own world; pausing pushes a state over the game
and resuming pops back to the untouched world underneath.

Examples:
  stackdemo run
  stackdemo run --config ./stackworld.toml --log-level debug
  stackdemo run --script ./my_state.tengo --start my_state
  stackdemo config --format toml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
