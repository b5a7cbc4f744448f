package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/jellyrename/internal/naming"
	"github.com/Nomadcxx/jellyrename/internal/planner"
	"github.com/Nomadcxx/jellyrename/internal/renamer"
	"github.com/Nomadcxx/jellyrename/internal/scanner"
	"github.com/Nomadcxx/jellyrename/internal/ui"
)

func newRenameCmd() *cobra.Command {
	var showName string
	var assumeYes bool
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename episode files to Show.Name.S01E01.ext",
		Long: `Scan a directory for video files, infer the show name, and rename every
file with a recognizable S01E01 style marker.

Files without a marker, and files whose name does not contain the show
name, are skipped. If two files would end up with the same name nothing
is renamed at all.

Examples:
  jellyrename rename /downloads/The.Rookie.S04/
  jellyrename rename /downloads/mixed/ --show "The Rookie"
  jellyrename rename /downloads/ --recursive --dry-run
  jellyrename rename /downloads/ --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("recursive") {
				recursive = cfg.Options.Recursive
			}
			assumeYes = assumeYes || cfg.Options.AssumeYes

			logger := interactiveLogger(cfg)
			defer logger.Close()

			entries, err := scanner.ListVideoFiles(dir, recursive)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				ui.WarningMsg("no video files found in %s", dir)
				return nil
			}

			names := entryNames(entries)

			if showName == "" {
				inference := naming.InferShowName(names)
				matched, total := agreement(inference, names)

				confirmed, ok, err := promptShowName(inference, matched, total)
				if err != nil {
					return err
				}
				if !ok {
					ui.InfoMsg("cancelled")
					return nil
				}
				showName = confirmed
			}
			if naming.NormalizeShowName(showName) == "" {
				return fmt.Errorf("show name is empty")
			}

			ops := buildPlan(showName, entries)

			if conflicts := planner.FindConflicts(ops); len(conflicts) > 0 {
				ui.ErrorMsg("conflicting target names, nothing renamed:")
				for _, name := range conflicts {
					fmt.Printf("  %s\n", name)
				}
				return fmt.Errorf("%d conflicting target names", len(conflicts))
			}

			printPlan(ops, entries)

			planned := 0
			for _, op := range ops {
				if !op.Skipped {
					planned++
				}
			}
			if planned == 0 {
				ui.WarningMsg("nothing to rename")
				return nil
			}

			if !cfg.Options.DryRun && !assumeYes {
				if !ui.Confirm(fmt.Sprintf("Rename %d files?", planned)) {
					ui.InfoMsg("cancelled")
					return nil
				}
			}

			start := time.Now()
			r := renamer.New(renamer.WithDryRun(cfg.Options.DryRun), renamer.WithLogger(logger))
			results, summary, err := r.Apply(ops)
			if err != nil {
				return err
			}

			fmt.Println()
			if cfg.Options.DryRun {
				ui.InfoMsg("dry run: %d files would be renamed, %d skipped", summary.Renamed, summary.Skipped)
				return nil
			}

			printResults(results)

			fmt.Println()
			ui.SuccessMsg("%d renamed, %d skipped, %d failed in %s",
				summary.Renamed, summary.Skipped, summary.Failed, ui.FormatDuration(time.Since(start)))

			if summary.Failed > 0 {
				return fmt.Errorf("%d files failed to rename", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&showName, "show", "s", "", "use this show name instead of inferring it")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "rename without asking for confirmation")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "scan subdirectories")

	return cmd
}

func printPlan(ops []planner.RenameOperation, entries []scanner.Entry) {
	sizes := make(map[string]int64, len(entries))
	for _, e := range entries {
		sizes[e.Path] = e.Size
	}

	ui.Section("Rename Plan")

	table := ui.NewTable("Current Name", "New Name", "Size")
	for _, op := range ops {
		if op.Skipped {
			continue
		}
		table.AddRow(op.OldName, op.NewName, ui.FormatBytes(sizes[op.OldPath]))
	}
	table.Render()

	for _, op := range ops {
		if !op.Skipped {
			continue
		}
		fmt.Printf("%s %s\n", ui.Dim("⊘ skipped"), op.OldName)
		if verbose {
			fmt.Printf("    %s\n", ui.Dim(op.Reason))
		}
	}
}

func printResults(results []renamer.Result) {
	for _, res := range results {
		if res.Op.Skipped {
			continue
		}
		if res.Err != nil {
			fmt.Printf("%s %s: %v\n", ui.Error("✗"), res.Op.OldName, res.Err)
			continue
		}
		fmt.Printf("%s %s\n", ui.Success("✓"), res.Op.NewName)
	}
}
