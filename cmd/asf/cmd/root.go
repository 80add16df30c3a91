/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ssargent/asfmeta/pkg/config"
	"github.com/ssargent/asfmeta/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

// newRootCmd builds the base command with all subcommands attached
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asf",
		Short: "ASF identifier tools",
		Long: `Tools for the identifiers found in ASF (Windows Media) metadata headers.

Convert object GUIDs between their text form and the 16-byte wire form,
and resolve audio codec tags to their registered names.

Examples:
  asf guid encode 75B22630-668E-11CF-A6D9-00AA0062CE6C
  asf guid decode 3026B2758E66CF11A6D900AA0062CE6C
  asf codec get 0x0161
  asf codec search "windows media"`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, yaml or json")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newGUIDCmd(), newCodecCmd(), newConfigCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		printErr(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies flag overrides and configures logging
func loadConfig(cmd *cobra.Command) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if explicit || config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output.Format = output
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := container.ConfigureLogging(cfg.Logging.Level); err != nil {
		return err
	}
	container.SetConfig(cfg)

	container.GetLogger().WithField("path", configPath).Debug("configuration loaded")

	return nil
}
