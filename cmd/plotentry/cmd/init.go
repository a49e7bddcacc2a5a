/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/plotentry/pkg/config"
)

var errConfigExists = errors.New("configuration already exists")

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file and create its data directory.

Examples:
  plotentry init
  plotentry init --config ./plotentry.yaml --data-dir ./plots --force`,
	Args: cobra.NoArgs,
	// Replaces the root hook so an unreadable or invalid config never blocks
	// writing a fresh one
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if err := initializeConfig(configPath, dataDir, force); err != nil {
			if errors.Is(err, errConfigExists) {
				cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
			}
			return err
		}
		cmd.Printf("Configuration written to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("data-dir", "", "Data directory recorded in the configuration")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}

// initializeConfig writes the default configuration to configPath
func initializeConfig(configPath, dataDir string, force bool) error {
	if config.ConfigExists(configPath) && !force {
		return errConfigExists
	}

	cfg := config.DefaultConfig()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return config.SaveConfig(cfg, configPath)
}
