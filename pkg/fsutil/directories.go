package fsutil

import (
	"os"
	"path/filepath"
)

// EnsureDir creates the directory path (and any missing parents) if it does
// not already exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of filePath if it does not
// already exist.
func EnsureFileDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), DirModeDefault)
}
