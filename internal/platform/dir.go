package platform

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotDir is returned when something other than a directory occupies the path.
var ErrNotDir = errors.New("not a directory")

// EnsureDir creates path and any missing parents. An existing directory is
// left untouched.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("creating directory %s: %w", path, ErrNotDir)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("checking directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}
