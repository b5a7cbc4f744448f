// Package planner builds rename plans for batches of episode files. It is
// purely computational: nothing here touches the filesystem, applying a plan
// is the renamer's job.
package planner

import (
	"fmt"
	"path/filepath"

	"github.com/Nomadcxx/jellyrename/internal/naming"
)

// Skip reasons attached to operations that cannot be planned.
const (
	ReasonNoPattern    = "No S##E## pattern found"
	ReasonNameMismatch = "Show name not found in filename"
)

// File is one candidate input file.
type File struct {
	Name string
	Path string
}

// RenameOperation describes what should happen to a single file. Skipped
// operations carry a Reason and empty NewPath/NewName; planned operations
// carry both targets and no Reason.
type RenameOperation struct {
	OldPath string
	NewPath string
	OldName string
	NewName string
	Skipped bool
	Reason  string
}

// PlanRenames builds one operation per file, in input order. Files without a
// season/episode marker or whose name does not contain every word of the
// confirmed show name are skipped, never dropped. The new name keeps the
// original extension verbatim, including its case.
func PlanRenames(showName string, files []File) []RenameOperation {
	normalized := naming.NormalizeShowName(showName)

	ops := make([]RenameOperation, 0, len(files))
	for _, file := range files {
		op := RenameOperation{
			OldPath: file.Path,
			OldName: file.Name,
		}

		se := naming.ExtractSeasonEpisode(file.Name)
		if se == nil {
			op.Skipped = true
			op.Reason = ReasonNoPattern
			ops = append(ops, op)
			continue
		}

		if !naming.ShowNameMatchesFilename(showName, file.Name) {
			op.Skipped = true
			op.Reason = ReasonNameMismatch
			ops = append(ops, op)
			continue
		}

		op.NewName = fmt.Sprintf("%s.S%sE%s%s", normalized, se.Season, se.Episode, filepath.Ext(file.Name))
		op.NewPath = filepath.Join(filepath.Dir(file.Path), op.NewName)
		ops = append(ops, op)
	}

	return ops
}

// FindConflicts returns every target name two or more planned operations
// share, once each, in the order the collision was discovered. Skipped
// operations have no target and are ignored. A non-empty result means the
// whole batch must not be applied.
func FindConflicts(ops []RenameOperation) []string {
	counts := make(map[string]int)
	var conflicts []string

	for _, op := range ops {
		if op.Skipped {
			continue
		}
		counts[op.NewName]++
		if counts[op.NewName] == 2 {
			conflicts = append(conflicts, op.NewName)
		}
	}

	return conflicts
}
