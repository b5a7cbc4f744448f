package renamer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nomadcxx/jellyrename/internal/planner"
)

// createTestFiles populates dir and returns planner inputs for the names
func createTestFiles(t *testing.T, dir string, names ...string) []planner.File {
	t.Helper()
	files := make([]planner.File, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("video"), 0644))
		files = append(files, planner.File{Name: name, Path: path})
	}
	return files
}

func TestApply_RenamesFiles(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir,
		"The.Rookie.S04E01.720p.mkv",
		"the_rookie_s04e02.mkv",
	)

	ops := planner.PlanRenames("The Rookie", files)
	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 2, summary.Planned)
	assert.Equal(t, 2, summary.Renamed)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E01.mkv"))
	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E02.mkv"))
	assert.NoFileExists(t, filepath.Join(dir, "The.Rookie.S04E01.720p.mkv"))
	assert.NoFileExists(t, filepath.Join(dir, "the_rookie_s04e02.mkv"))
}

func TestApply_DryRunLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir, "The.Rookie.S04E01.720p.mkv")

	ops := planner.PlanRenames("The Rookie", files)
	results, summary, err := New(WithDryRun(true)).Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Renamed, "dry run reports the would-be rename")
	assert.Equal(t, 1, summary.Renamed)

	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E01.720p.mkv"))
	assert.NoFileExists(t, filepath.Join(dir, "The.Rookie.S04E01.mkv"))
}

func TestApply_ConflictsBlockWholeBatch(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir,
		"Show.S01E01.mkv",
		"Show.S01E01.720p.mkv",
		"Show.S01E02.mkv",
	)

	ops := planner.PlanRenames("Show", files)
	results, _, err := New().Apply(ops)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Show.S01E01.mkv")
	assert.Nil(t, results)

	// Nothing may be touched, including the conflict-free episode
	assert.FileExists(t, filepath.Join(dir, "Show.S01E01.mkv"))
	assert.FileExists(t, filepath.Join(dir, "Show.S01E01.720p.mkv"))
	assert.FileExists(t, filepath.Join(dir, "Show.S01E02.mkv"))
}

func TestApply_SkippedFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir,
		"The.Rookie.S04E01.720p.mkv",
		"behind-the-scenes.mkv",
		"Wonder.Man.S01E01.mkv",
	)

	ops := planner.PlanRenames("The Rookie", files)
	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 1, summary.Planned)
	assert.Equal(t, 1, summary.Renamed)
	assert.Equal(t, 2, summary.Skipped)

	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E01.mkv"))
	assert.FileExists(t, filepath.Join(dir, "behind-the-scenes.mkv"))
	assert.FileExists(t, filepath.Join(dir, "Wonder.Man.S01E01.mkv"))
}

func TestApply_RefusesToClobberExistingTarget(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir, "The.Rookie.S04E01.720p.mkv")

	// The canonical name is already taken by another file
	target := filepath.Join(dir, "The.Rookie.S04E01.mkv")
	require.NoError(t, os.WriteFile(target, []byte("existing"), 0644))

	ops := planner.PlanRenames("The Rookie", files)
	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.Error(t, results[0].Err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Renamed)

	// Source untouched, existing target intact
	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E01.720p.mkv"))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestApply_CaseOnlyRename(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir, "the.rookie.s04e08.mkv")

	ops := planner.PlanRenames("The Rookie", files)
	require.Len(t, ops, 1)
	require.Equal(t, "The.Rookie.S04E08.mkv", ops[0].NewName)

	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, summary.Renamed)
	assert.Equal(t, 0, summary.Failed)
	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E08.mkv"))
}

func TestApply_TargetResolvingToSourceIsNotAClobber(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir, "The.Rookie.S04E01.720p.mkv")

	ops := planner.PlanRenames("The Rookie", files)
	require.Len(t, ops, 1)

	// A second directory entry for the source at the target path: what a
	// case-insensitive filesystem resolves for a case-only rename.
	require.NoError(t, os.Link(ops[0].OldPath, ops[0].NewPath))

	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, summary.Renamed)
	assert.Equal(t, 0, summary.Failed)
	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E01.mkv"))
}

func TestApply_AlreadyCanonicalName(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir, "The.Rookie.S04E01.mkv")

	ops := planner.PlanRenames("The Rookie", files)
	require.Equal(t, ops[0].OldPath, ops[0].NewPath, "plan should map the file onto itself")

	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, summary.Renamed)
	assert.FileExists(t, filepath.Join(dir, "The.Rookie.S04E01.mkv"))
}

func TestApply_ContinuesAfterPerFileFailure(t *testing.T) {
	dir := t.TempDir()
	files := createTestFiles(t, dir,
		"Show.S01E01.720p.mkv",
		"Show.S01E02.720p.mkv",
	)

	// Block the first target only
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Show.S01E01.mkv"), []byte("x"), 0644))

	ops := planner.PlanRenames("Show", files)
	results, summary, err := New().Apply(ops)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Renamed)
	assert.FileExists(t, filepath.Join(dir, "Show.S01E02.mkv"))
}
