// Package scanner enumerates candidate video files for the rename pipeline.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/Nomadcxx/jellyrename/internal/naming"
)

// Entry is one video file found during enumeration.
type Entry struct {
	Name string
	Path string
	Size int64
}

// ListVideoFiles returns the video files directly inside dir, or in its whole
// subtree when recursive is set. Results are sorted by path so plans come out
// deterministic regardless of directory read order.
func ListVideoFiles(dir string, recursive bool) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	if recursive {
		return walkVideoFiles(dir)
	}
	return readVideoFiles(dir)
}

func readVideoFiles(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory: %w", err)
	}

	var files []Entry
	for _, entry := range entries {
		if entry.IsDir() || !naming.IsVideoFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, Entry{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		})
	}

	sortEntries(files)
	return files, nil
}

func walkVideoFiles(root string) ([]Entry, error) {
	var files []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !naming.IsVideoFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, Entry{Name: d.Name(), Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk directory: %w", err)
	}

	sortEntries(files)
	return files, nil
}

func sortEntries(files []Entry) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
}
