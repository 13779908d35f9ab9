package util

import (
	"errors"
	"os"
)

// ErrBadStatus is returned for non-200 HTTP responses.
var ErrBadStatus = errors.New("unexpected HTTP status")

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
