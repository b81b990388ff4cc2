package compdb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CollectSources walks dir recursively and returns the absolute paths of
// every non-directory entry whose name ends with suffix, sorted.
// Symlinks are not followed; a symlink to a directory is skipped.
func CollectSources(dir, suffix string) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTraversal, dir, err)
	}

	sources := []string{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Dangling links still count as sources.
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}
		sources = append(sources, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTraversal, dir, err)
	}

	slices.Sort(sources)
	return sources, nil
}
