package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// BackupDir creates a fresh, uniquely named directory for one invocation's
// backup copies under the system temp directory.
func BackupDir() (string, error) {
	return os.MkdirTemp("", "pig-backup-")
}

// WriteBackup copies content (the original bytes of path) into dir under a
// collision-free name and returns the backup path. The backup is written
// before the original is ever touched.
func WriteBackup(dir, path string, content []byte) (string, error) {
	name := fmt.Sprintf("%s.%s.bak", filepath.Base(path), uuid.NewString())
	backupPath := filepath.Join(dir, name)
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", err
	}
	return backupPath, nil
}

// ReplaceFile replaces the content of path by writing to a temporary file
// in the same directory and renaming it over the original, so an
// interrupted write never leaves a truncated file behind. The original
// file mode is preserved.
func ReplaceFile(path string, content []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
