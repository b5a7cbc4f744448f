package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/jellyrename/internal/config"
	"github.com/Nomadcxx/jellyrename/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage jellyrename configuration",
		Long: `Commands for managing jellyrename configuration.

The config file is stored at: ~/.config/jellyrename/config.toml

Examples:
  jellyrename config init   # Create default config file
  jellyrename config show   # Display current configuration
  jellyrename config path   # Show config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create a new configuration file with default values.

The config file will be created at ~/.config/jellyrename/config.toml
Edit this file to set your watch directories and default options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigExists() && !force {
				path, _ := config.ConfigPath()
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := config.ConfigPath()
			ui.SuccessMsg("created config file: %s", path)
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Edit the config file to set watch directories and options")
			fmt.Println("  2. Run 'jellyrename config show' to review settings")

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			path := cfgFile
			if path == "" {
				path, _ = config.ConfigPath()
			}
			fmt.Printf("Config file: %s\n", path)
			if cfgFile == "" && !config.ConfigExists() {
				fmt.Println("(file does not exist, showing defaults)")
			}
			fmt.Println()

			fmt.Println("=== Options ===")
			fmt.Printf("Dry Run:    %v\n", cfg.Options.DryRun)
			fmt.Printf("Recursive:  %v\n", cfg.Options.Recursive)
			fmt.Printf("Assume Yes: %v\n", cfg.Options.AssumeYes)

			fmt.Println("\n=== Watch ===")
			fmt.Printf("Directories: %v\n", cfg.Watch.Directories)
			fmt.Printf("Settle:      %ds\n", cfg.Watch.SettleSeconds)
			fmt.Printf("Auto Apply:  %v\n", cfg.Watch.AutoApply)

			fmt.Println("\n=== Output ===")
			fmt.Printf("No Color: %v\n", cfg.UI.NoColor)

			fmt.Println("\n=== Logging ===")
			fmt.Printf("Level:       %s\n", cfg.Logging.Level)
			file := cfg.Logging.File
			if file == "" {
				file = "(default)"
			}
			fmt.Printf("File:        %s\n", file)
			fmt.Printf("Max Size:    %d MB\n", cfg.Logging.MaxSizeMB)
			fmt.Printf("Max Backups: %d\n", cfg.Logging.MaxBackups)

			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			if !config.ConfigExists() {
				fmt.Println("(file does not exist)")
			}
			return nil
		},
	}
}
