package utils

import (
	"os"
	"path/filepath"
)

// ReadyDir creates the parent dir of filename
func ReadyDir(filename string) error {
	dir := filepath.Dir(filename)
	return os.MkdirAll(dir, os.FileMode(0755))
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// FileSize return file size, return -1 if error
func FileSize(fpath string) int64 {
	if fi, err := os.Stat(fpath); err == nil {
		return fi.Size()
	}
	return -1
}

// BaseName returns the file name without directory and extension
func BaseName(fpath string) string {
	name := filepath.Base(fpath)
	return name[:len(name)-len(filepath.Ext(name))]
}
