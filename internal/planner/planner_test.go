package planner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileIn(dir, name string) File {
	return File{Name: name, Path: filepath.Join(dir, name)}
}

func TestPlanRenames_Basic(t *testing.T) {
	files := []File{
		fileIn("/media/incoming", "The.Rookie.S04E01.720p.mkv"),
	}

	ops := PlanRenames("The Rookie", files)
	require.Len(t, ops, 1)

	op := ops[0]
	assert.False(t, op.Skipped)
	assert.Empty(t, op.Reason)
	assert.Equal(t, "The.Rookie.S04E01.mkv", op.NewName)
	assert.Equal(t, filepath.Join("/media/incoming", "The.Rookie.S04E01.mkv"), op.NewPath)
	assert.Equal(t, "The.Rookie.S04E01.720p.mkv", op.OldName)
	assert.Equal(t, filepath.Join("/media/incoming", "The.Rookie.S04E01.720p.mkv"), op.OldPath)
}

func TestPlanRenames_SkipsMarkerlessFiles(t *testing.T) {
	files := []File{
		fileIn("/media", "The.Rookie.S04E01.mkv"),
		fileIn("/media", "The.Rookie.Special.mkv"),
	}

	ops := PlanRenames("The Rookie", files)
	require.Len(t, ops, 2)

	assert.False(t, ops[0].Skipped)

	skipped := ops[1]
	assert.True(t, skipped.Skipped)
	assert.Equal(t, ReasonNoPattern, skipped.Reason)
	assert.Empty(t, skipped.NewName, "skipped operations carry no target name")
	assert.Empty(t, skipped.NewPath, "skipped operations carry no target path")
}

func TestPlanRenames_SkipsMismatchedShow(t *testing.T) {
	files := []File{
		fileIn("/media", "Wonder.Man.S01E01.mkv"),
	}

	ops := PlanRenames("The Rookie", files)
	require.Len(t, ops, 1)

	assert.True(t, ops[0].Skipped)
	assert.Equal(t, ReasonNameMismatch, ops[0].Reason)
}

func TestPlanRenames_RejectsEmbeddedNameWithoutSeparators(t *testing.T) {
	files := []File{
		fileIn("/media", "Therookie.S04E07.mkv"),
	}

	ops := PlanRenames("Rookie", files)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Skipped)
	assert.Equal(t, ReasonNameMismatch, ops[0].Reason)
}

func TestPlanRenames_NormalizesShowName(t *testing.T) {
	files := []File{
		fileIn("/media", "the_rookie_s4e7.mkv"),
	}

	ops := PlanRenames("  the   rookie  ", files)
	require.Len(t, ops, 1)

	assert.False(t, ops[0].Skipped)
	assert.Equal(t, "The.Rookie.S04E07.mkv", ops[0].NewName)
}

func TestPlanRenames_KeepsExtensionCase(t *testing.T) {
	files := []File{
		fileIn("/media", "The.Rookie.S04E01.MKV"),
		fileIn("/media", "The.Rookie.S04E02.Mp4"),
	}

	ops := PlanRenames("The Rookie", files)
	require.Len(t, ops, 2)

	assert.Equal(t, "The.Rookie.S04E01.MKV", ops[0].NewName)
	assert.Equal(t, "The.Rookie.S04E02.Mp4", ops[1].NewName)
}

func TestPlanRenames_PreservesInputOrder(t *testing.T) {
	files := []File{
		fileIn("/media", "The.Rookie.S04E03.mkv"),
		fileIn("/media", "The.Rookie.S04E01.mkv"),
		fileIn("/media", "The.Rookie.S04E02.mkv"),
	}

	ops := PlanRenames("The Rookie", files)
	require.Len(t, ops, 3)
	assert.Equal(t, "The.Rookie.S04E03.mkv", ops[0].NewName)
	assert.Equal(t, "The.Rookie.S04E01.mkv", ops[1].NewName)
	assert.Equal(t, "The.Rookie.S04E02.mkv", ops[2].NewName)
}

func TestFindConflicts_DuplicateTargets(t *testing.T) {
	files := []File{
		fileIn("/media", "Show.S01E01.mkv"),
		fileIn("/media", "Show.S01E01.720p.mkv"),
	}

	ops := PlanRenames("Show", files)
	require.Len(t, ops, 2)
	require.False(t, ops[0].Skipped)
	require.False(t, ops[1].Skipped)

	conflicts := FindConflicts(ops)
	assert.Equal(t, []string{"Show.S01E01.mkv"}, conflicts)
}

func TestFindConflicts_UniqueTargets(t *testing.T) {
	files := []File{
		fileIn("/media", "Show.S01E01.mkv"),
		fileIn("/media", "Show.S01E02.mkv"),
	}

	ops := PlanRenames("Show", files)
	conflicts := FindConflicts(ops)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_IgnoresSkippedOperations(t *testing.T) {
	files := []File{
		fileIn("/media", "no-marker-one.mkv"),
		fileIn("/media", "no-marker-two.mkv"),
		fileIn("/media", "Show.S01E01.mkv"),
	}

	ops := PlanRenames("Show", files)
	require.Len(t, ops, 3)
	require.True(t, ops[0].Skipped)
	require.True(t, ops[1].Skipped)

	conflicts := FindConflicts(ops)
	assert.Empty(t, conflicts, "skipped operations share no target")
}

func TestFindConflicts_ReportsEachTargetOnce(t *testing.T) {
	files := []File{
		fileIn("/media", "Show.S01E01.mkv"),
		fileIn("/media", "Show.S01E01.720p.mkv"),
		fileIn("/media", "Show.S01E01.1080p.mkv"),
		fileIn("/media", "Show.S01E02.mkv"),
		fileIn("/media", "Show.S01E02.REPACK.mkv"),
	}

	ops := PlanRenames("Show", files)
	conflicts := FindConflicts(ops)
	assert.Equal(t, []string{"Show.S01E01.mkv", "Show.S01E02.mkv"}, conflicts)
}
