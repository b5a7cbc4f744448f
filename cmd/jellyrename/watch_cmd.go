package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/jellyrename/internal/logging"
	"github.com/Nomadcxx/jellyrename/internal/naming"
	"github.com/Nomadcxx/jellyrename/internal/planner"
	"github.com/Nomadcxx/jellyrename/internal/renamer"
	"github.com/Nomadcxx/jellyrename/internal/scanner"
	"github.com/Nomadcxx/jellyrename/internal/ui"
	"github.com/Nomadcxx/jellyrename/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	var autoApply bool
	var settle time.Duration
	var recursive bool

	cmd := &cobra.Command{
		Use:   "watch [directory...]",
		Short: "Watch directories and rename new episode files",
		Long: `Monitor directories for new video files. Once a directory has been quiet
for the settle delay the rename pipeline runs against it.

Renames are only applied automatically with --auto, and only when every
file in the directory agrees on the show name. Otherwise the plan is
logged so it can be applied manually with 'jellyrename rename'.

Examples:
  jellyrename watch /downloads/tv
  jellyrename watch /downloads/tv --auto
  jellyrename watch --settle 10s  # directories from config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dirs := args
			if len(dirs) == 0 {
				dirs = cfg.Watch.Directories
			}
			if len(dirs) == 0 {
				return fmt.Errorf("no directories to watch (pass them as arguments or set watch.directories in config)")
			}

			for _, dir := range dirs {
				if err := checkWatchable(dir); err != nil {
					return fmt.Errorf("cannot watch %s: %w", dir, err)
				}
			}

			if !cmd.Flags().Changed("auto") {
				autoApply = cfg.Watch.AutoApply
			}
			if !cmd.Flags().Changed("settle") {
				settle = time.Duration(cfg.Watch.SettleSeconds) * time.Second
			}

			logger, err := logging.New(loggingConfig(cfg))
			if err != nil {
				return fmt.Errorf("unable to set up logging: %w", err)
			}
			defer logger.Close()
			if verbose {
				logger.SetLevel(logging.LevelDebug)
			}

			handler := &settleHandler{
				logger:    logger,
				dryRun:    cfg.Options.DryRun,
				autoApply: autoApply,
			}

			w, err := watcher.NewWatcher(handler,
				watcher.WithRecursive(recursive),
				watcher.WithSettleDelay(settle),
				watcher.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}
			defer w.Close()

			if err := w.Watch(dirs); err != nil {
				return fmt.Errorf("setting up watch: %w", err)
			}

			for _, dir := range dirs {
				fmt.Printf("%s %s\n", ui.Action("Watching:"), ui.Path(dir))
			}
			if cfg.Options.DryRun {
				fmt.Println("Mode: DRY RUN (no files will be renamed)")
			} else if !autoApply {
				fmt.Println("Mode: plan only (use --auto to apply renames)")
			}
			fmt.Printf("Log file: %s\n", ui.Path(logger.FilePath()))
			fmt.Println("\nPress Ctrl+C to stop")

			return w.Start()
		},
	}

	cmd.Flags().BoolVar(&autoApply, "auto", false, "apply renames automatically when every file agrees")
	cmd.Flags().DurationVar(&settle, "settle", 2*time.Second, "quiet period before a directory is processed")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "watch subdirectories")

	return cmd
}

// settleHandler runs the rename pipeline against directories that have
// stopped receiving new video files. Renames only happen with autoApply set
// and unanimous agreement on the show name; anything less is logged for a
// manual run.
type settleHandler struct {
	logger    *logging.Logger
	dryRun    bool
	autoApply bool
}

func (h *settleHandler) IsVideoFile(path string) bool {
	return naming.IsVideoFile(path)
}

func (h *settleHandler) HandleSettled(dir string) error {
	entries, err := scanner.ListVideoFiles(dir, false)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	names := entryNames(entries)
	inference := naming.InferShowName(names)
	if inference.ShowName == "" {
		h.logger.Warn("watch", "no show name detected", logging.F("dir", dir))
		return nil
	}

	ops := buildPlan(inference.ShowName, entries)
	if conflicts := planner.FindConflicts(ops); len(conflicts) > 0 {
		h.logger.Warn("watch", "conflicting target names",
			logging.F("dir", dir),
			logging.F("targets", strings.Join(conflicts, ", ")))
		return nil
	}

	planned := 0
	for _, op := range ops {
		if !op.Skipped {
			planned++
		}
	}
	if planned == 0 {
		h.logger.Info("watch", "nothing to rename", logging.F("dir", dir))
		return nil
	}

	if !h.autoApply || inference.Confidence != naming.ConfidenceHigh {
		h.logger.Info("watch", "plan ready, not applying",
			logging.F("dir", dir),
			logging.F("show", inference.ShowName),
			logging.F("confidence", inference.Confidence.String()),
			logging.F("files", planned))
		return nil
	}

	r := renamer.New(renamer.WithDryRun(h.dryRun), renamer.WithLogger(h.logger))
	_, summary, err := r.Apply(ops)
	if err != nil {
		return err
	}

	h.logger.Info("watch", "batch complete",
		logging.F("dir", dir),
		logging.F("show", inference.ShowName),
		logging.F("renamed", summary.Renamed),
		logging.F("failed", summary.Failed))
	return nil
}

func checkWatchable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("does not exist")
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	if _, err := os.ReadDir(path); err != nil {
		return fmt.Errorf("not readable")
	}
	return nil
}
