package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsPythonFile checks if a file is a Python source file
func IsPythonFile(filename string) bool {
	return strings.HasSuffix(filename, ".py")
}

// FindPythonFiles recursively finds all Python source files in a directory.
// Directory names in skipDirs are not descended into, nor are hidden
// directories.
func FindPythonFiles(root string, skipDirs []string) ([]string, error) {
	skip := make(map[string]bool, len(skipDirs))
	for _, name := range skipDirs {
		skip[name] = true
	}

	var pyFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if skip[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsPythonFile(filepath.Base(path)) {
			pyFiles = append(pyFiles, path)
		}

		return nil
	})

	return pyFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
