package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads and decodes a project file.
func ParseFile(path string) (*BuildFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes project file bytes; path is used in error messages only.
func Parse(data []byte, path string) (*BuildFile, error) {
	var bf BuildFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	return &bf, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
