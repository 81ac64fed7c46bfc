package utils

import (
	"errors"
	"fmt"
	"os"
)

// EnsureDir creates dir along with any missing parents. It fails when
// something other than a directory is already at that path.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return os.MkdirAll(dir, 0755)
	}
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%v exists and is not a directory", dir)
	}

	return nil
}

// WriteFileIfNotExist writes 'content' to a new file at filePath, & reports whether
// it did. An existing file is left as is.
func WriteFileIfNotExist(filePath string, content []byte, perm os.FileMode) (bool, error) {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return false, err
	}

	return true, f.Close()
}
