/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/plotentry/pkg/config"
	"github.com/ssargent/plotentry/pkg/logging"
	"github.com/ssargent/plotentry/pkg/table"
)

type sessionKey struct{}

// session is what PersistentPreRunE hands to every subcommand
type session struct {
	config *config.Config
	logger *slog.Logger
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plotentry",
	Short: "Inspect plot table files",
	Long: `plotentry reads, verifies and archives the fixed-width record files
written by each phase of plot construction.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Logging.Format, _ = cmd.Flags().GetString("log-format")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		rt := &session{config: cfg, logger: logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging)}
		rt.logger.Debug("configuration loaded", "path", configPath, "workers", cfg.Workers)

		cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, rt))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

func sessionFrom(cmd *cobra.Command) (*session, error) {
	rt, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, fmt.Errorf("session not initialised")
	}
	return rt, nil
}

// kindFlag reads and parses the --kind flag
func kindFlag(cmd *cobra.Command) (table.Kind, error) {
	name, _ := cmd.Flags().GetString("kind")
	return table.ParseKind(name)
}

func addKindFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("kind", "k", "", "Record kind: t1..t7, tmp1, tmp or p2 (required)")
	if err := cmd.MarkFlagRequired("kind"); err != nil {
		panic(err)
	}
}
