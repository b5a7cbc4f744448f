package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/jellyrename/internal/naming"
	"github.com/Nomadcxx/jellyrename/internal/scanner"
	"github.com/Nomadcxx/jellyrename/internal/ui"
)

func newInferCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "infer [directory]",
		Short: "Show which show name the files agree on",
		Long: `Scan a directory and report the inferred show name without renaming
anything.

Prints the winning name, a confidence tier based on how many files agree,
and every competing name found in the directory.

Examples:
  jellyrename infer /downloads/The.Rookie.S04/
  jellyrename infer /downloads/mixed/ --recursive`,
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

			entries, err := scanner.ListVideoFiles(dir, recursive)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				ui.WarningMsg("no video files found in %s", dir)
				return nil
			}

			names := entryNames(entries)
			inference := naming.InferShowName(names)
			matched, total := agreement(inference, names)

			fmt.Println(confidenceLine(inference, matched, total))

			order, counts := candidateTally(names)
			if len(order) == 0 {
				return nil
			}

			fmt.Println()
			rows := make([][]string, 0, len(order))
			for _, candidate := range order {
				share := float64(counts[candidate]) / float64(total) * 100
				marker := " "
				if candidate == inference.ShowName {
					marker = "✓"
				}
				rows = append(rows, []string{
					marker,
					candidate,
					fmt.Sprintf("%d", counts[candidate]),
					fmt.Sprintf("%.0f%%", share),
				})
			}
			ui.CompactTable([]string{" ", "Show Name", "Files", "Share"}, rows)

			if total < len(entries) {
				fmt.Println()
				ui.InfoMsg("%d of %d files contributed no candidate name", len(entries)-total, len(entries))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "scan subdirectories")

	return cmd
}
