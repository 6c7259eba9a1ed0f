// uju flies a small rocket around the screen: gravity pulls it down, the
// arrow keys fire thrusters, and a fire trail follows the nozzle.
//
// Usage:
//
//	uju play      - Fly in a desktop window
//	uju term      - Fly in the terminal
//	uju config    - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Custom rocket.yaml
//	--assets <dir>      - Directory holding rocket.png and smoke_fire.png
//	--fps <rate>        - Frame rate (default: 60)
//	--seed <value>      - Fire trail RNG seed (0 = time-based)
//	--log-level <level> - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "uju",
	Short: "uju - fly a rocket with the arrow keys",
	Long: `uju is a small rocket toy. Gravity pulls the rocket down, the arrow
keys fire its thrusters, and sideways drift bleeds off once you let go.

Available commands:
  play     - Fly in a desktop window
  term     - Fly in the terminal
  config   - Print the effective configuration

Examples:
  uju play
  uju play --assets ./assets --fps 120
  uju term --log-file uju.log --log-level debug
  uju config --config ./my-rocket.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rocket config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides the config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(configCmd)
}
