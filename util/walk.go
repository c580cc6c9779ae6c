package util

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSourceExtension is the extension of the files that get rewritten
const DefaultSourceExtension = ".swift"

// DefaultExcludedDirs lists build output, dependency caches and VCS metadata that
// are never scanned
var DefaultExcludedDirs = []string{".build", "build", "DerivedData", ".git", "Pods"}

// FindSourceFiles recursively collects all files below root whose name ends with ext.
// Directories named in DefaultExcludedDirs or extraExcludes are pruned before
// descent; root itself is always scanned. Unreadable entries are skipped.
// Files are returned in directory-entry order.
func FindSourceFiles(root, ext string, extraExcludes ...string) ([]string, error) {
	if ext == "" {
		ext = DefaultSourceExtension
	}

	excluded := make(map[string]bool, len(DefaultExcludedDirs)+len(extraExcludes))
	for _, dir := range DefaultExcludedDirs {
		excluded[dir] = true
	}
	for _, dir := range extraExcludes {
		if dir = strings.TrimSpace(dir); dir != "" {
			excluded[dir] = true
		}
	}

	// WalkDir does not follow a symlinked root; walk its target and report paths
	// below the root as given
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == walkRoot {
				return err
			}
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if path != walkRoot && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		// symlinked directories are neither followed nor collected
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				slog.Debug("skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if info.IsDir() {
				return nil
			}
		}

		files = append(files, rebase(root, walkRoot, path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// rebase maps path below walkRoot to the same location below root
func rebase(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}
