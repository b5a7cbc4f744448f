package main

import (
	"github.com/Nomadcxx/jellyrename/internal/naming"
	"github.com/Nomadcxx/jellyrename/internal/planner"
	"github.com/Nomadcxx/jellyrename/internal/scanner"
)

func entryNames(entries []scanner.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// buildPlan plans renames for every scanned entry under the given show name.
func buildPlan(showName string, entries []scanner.Entry) []planner.RenameOperation {
	files := make([]planner.File, len(entries))
	for i, e := range entries {
		files[i] = planner.File{Name: e.Name, Path: e.Path}
	}
	return planner.PlanRenames(showName, files)
}

// agreement counts how many of the filenames that contributed a candidate
// name voted for the winner.
func agreement(result naming.InferenceResult, filenames []string) (matched, total int) {
	for _, name := range filenames {
		candidate := naming.ExtractShowNameFromFilename(name)
		if candidate == "" {
			continue
		}
		total++
		if candidate == result.ShowName {
			matched++
		}
	}
	return matched, total
}

// candidateTally counts votes per candidate name, in first-seen order.
func candidateTally(filenames []string) ([]string, map[string]int) {
	counts := make(map[string]int)
	var order []string
	for _, name := range filenames {
		candidate := naming.ExtractShowNameFromFilename(name)
		if candidate == "" {
			continue
		}
		if _, ok := counts[candidate]; !ok {
			order = append(order, candidate)
		}
		counts[candidate]++
	}
	return order, counts
}
