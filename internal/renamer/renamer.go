// Package renamer applies rename plans to the filesystem.
package renamer

import (
	"fmt"
	"os"
	"strings"

	"github.com/Nomadcxx/jellyrename/internal/logging"
	"github.com/Nomadcxx/jellyrename/internal/planner"
)

// Result records what happened to a single operation during apply.
// Renamed is true for operations that were applied, or would have been
// applied in dry-run mode.
type Result struct {
	Op      planner.RenameOperation
	Renamed bool
	Err     error
}

// Summary aggregates a finished batch.
type Summary struct {
	Planned int
	Renamed int
	Skipped int
	Failed  int
}

type Renamer struct {
	dryRun bool
	logger *logging.Logger
}

func New(options ...func(*Renamer)) *Renamer {
	r := &Renamer{
		logger: logging.Nop(),
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// WithDryRun sets dry run mode
func WithDryRun(dryRun bool) func(*Renamer) {
	return func(r *Renamer) {
		r.dryRun = dryRun
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) func(*Renamer) {
	return func(r *Renamer) {
		r.logger = logger
	}
}

// Apply executes a plan. The whole batch is checked for target conflicts
// before the first rename; a conflicting plan applies nothing and the error
// lists every contested target name. Per-file failures do not stop the rest
// of the batch.
func (r *Renamer) Apply(ops []planner.RenameOperation) ([]Result, Summary, error) {
	if conflicts := planner.FindConflicts(ops); len(conflicts) > 0 {
		return nil, Summary{}, fmt.Errorf("conflicting target names: %s", strings.Join(conflicts, ", "))
	}

	results := make([]Result, 0, len(ops))
	var summary Summary

	for _, op := range ops {
		if op.Skipped {
			summary.Skipped++
			results = append(results, Result{Op: op})
			r.logger.Debug("renamer", "skipped file", logging.F("file", op.OldName), logging.F("reason", op.Reason))
			continue
		}

		summary.Planned++

		if r.dryRun {
			summary.Renamed++
			results = append(results, Result{Op: op, Renamed: true})
			r.logger.Info("renamer", "would rename", logging.F("from", op.OldName), logging.F("to", op.NewName))
			continue
		}

		if err := r.rename(op); err != nil {
			summary.Failed++
			results = append(results, Result{Op: op, Err: err})
			r.logger.Error("renamer", "rename failed", err, logging.F("from", op.OldName), logging.F("to", op.NewName))
			continue
		}

		summary.Renamed++
		results = append(results, Result{Op: op, Renamed: true})
		r.logger.Info("renamer", "renamed file", logging.F("from", op.OldName), logging.F("to", op.NewName))
	}

	return results, summary, nil
}

func (r *Renamer) rename(op planner.RenameOperation) error {
	// Renaming over an unrelated existing file would silently destroy it.
	// A hit on the target path is fine when it resolves to the source
	// itself: a case-insensitive filesystem reports exactly that for a
	// case-only rename, and an already-canonical file maps onto itself.
	if newInfo, err := os.Stat(op.NewPath); err == nil {
		oldInfo, oldErr := os.Stat(op.OldPath)
		if oldErr != nil || !os.SameFile(oldInfo, newInfo) {
			return fmt.Errorf("target already exists: %s", op.NewName)
		}
	}

	if err := os.Rename(op.OldPath, op.NewPath); err != nil {
		return fmt.Errorf("unable to rename %s: %w", op.OldName, err)
	}

	return nil
}
