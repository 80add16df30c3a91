/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ssargent/asfmeta/pkg/config"
)

// newConfigCmd represents the config command
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the asf configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file.

Examples:
  asf config init
  asf config init --config ./asf.yaml --force`,
		Args: cobra.NoArgs,
		// init must work even when the existing file is broken
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if container == nil {
				return fmt.Errorf("dependency container not initialized")
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				return container.ConfigureLogging(level)
			}
			return nil
		},
		RunE: runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configCmd.AddCommand(initCmd, showCmd)

	return configCmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}
	force, _ := cmd.Flags().GetBool("force")

	if config.ConfigExists(configPath) && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
	}

	if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
		return err
	}

	container.GetLogger().WithField("path", configPath).Info("configuration written")
	cmd.Printf("Wrote configuration to %s\n", configPath)

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := container.GetConfig()

	return render(cmd, cfg, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Output format:\t%s\n", cfg.Output.Format)
		fmt.Fprintf(tw, "Hex style:\t%s\n", cfg.Output.HexStyle)
		fmt.Fprintf(tw, "Unknown label:\t%s\n", cfg.Output.UnknownLabel)
		fmt.Fprintf(tw, "Log level:\t%s\n", cfg.Logging.Level)
		return tw.Flush()
	})
}
