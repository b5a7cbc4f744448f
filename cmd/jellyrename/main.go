package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/jellyrename/internal/config"
	"github.com/Nomadcxx/jellyrename/internal/logging"
	"github.com/Nomadcxx/jellyrename/internal/ui"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	cfgFile string
	dryRun  bool
	verbose bool
	noColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jellyrename",
		Short: "Batch rename TV episode files to a consistent scheme",
		Long: `JellyRename scans a directory of episode files, infers the show name
from the filenames themselves, and renames every recognizable episode
to "Show.Name.S01E01.ext".

Features:
  - Show name inference with agreement-based confidence
  - Season/episode detection from S01E01 style markers
  - Conflict detection before anything is touched
  - Watch mode that renames new downloads once they settle`,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/jellyrename/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "preview changes without renaming files")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newInferCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the config file and layers the persistent flags on top.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if dryRun {
		cfg.Options.DryRun = true
	}
	if noColor || cfg.UI.NoColor {
		ui.DisableColors()
	}

	return cfg, nil
}

func loggingConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}
}

// interactiveLogger keeps normal command output clean: the log stream only
// shows up with --verbose.
func interactiveLogger(cfg *config.Config) *logging.Logger {
	if !verbose {
		return logging.Nop()
	}

	logCfg := loggingConfig(cfg)
	logCfg.Level = "debug"
	logger, err := logging.New(logCfg)
	if err != nil {
		ui.WarningMsg("logging unavailable: %v", err)
		return logging.Nop()
	}
	return logger
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jellyrename %s\n", version)
		},
	}
}
