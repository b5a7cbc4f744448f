package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// rotateFiles shifts numbered backups up by one and moves the live log to
// <name>.1<ext>. Backups numbered maxBackups or higher are removed.
func rotateFiles(basePath string, maxBackups int) error {
	dir := filepath.Dir(basePath)
	ext := filepath.Ext(basePath)
	name := strings.TrimSuffix(filepath.Base(basePath), ext)

	backupPath := func(num int) string {
		return filepath.Join(dir, fmt.Sprintf("%s.%d%s", name, num, ext))
	}

	backups, err := findBackups(dir, name, ext)
	if err != nil {
		return err
	}

	// Shift highest-numbered backups first so renames never collide
	sort.Sort(sort.Reverse(sort.IntSlice(backups)))

	for _, num := range backups {
		if num >= maxBackups {
			os.Remove(backupPath(num))
			continue
		}
		if err := os.Rename(backupPath(num), backupPath(num+1)); err != nil {
			return fmt.Errorf("failed to rotate %s: %w", backupPath(num), err)
		}
	}

	if _, err := os.Stat(basePath); err == nil {
		if err := os.Rename(basePath, backupPath(1)); err != nil {
			return fmt.Errorf("failed to rotate current log: %w", err)
		}
	}

	return nil
}

// findBackups returns the numbers of existing backup files for the base name.
func findBackups(dir, name, ext string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	prefix := name + "."
	var backups []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fname := entry.Name()
		if !strings.HasPrefix(fname, prefix) || !strings.HasSuffix(fname, ext) {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(fname, prefix), ext))
		if err != nil {
			continue
		}
		backups = append(backups, num)
	}

	return backups, nil
}
