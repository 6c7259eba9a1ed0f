package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uju/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
search order: --config, ~/.uju/rocket.yaml, ./configs/rocket.yaml, built-in
defaults. The output is a complete rocket.yaml you can edit.

Examples:
  uju config > ~/.uju/rocket.yaml
  uju config --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadRocket(flagConfig)
	if err != nil {
		return err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
