package names

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Decode reads a flat YAML mapping of raw display name to canonical name.
func Decode(r io.Reader) (map[string]string, error) {
	entries := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("names: decode: %w", err)
	}
	return entries, nil
}

// LoadFile reads a YAML name table from path.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("names: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return entries, nil
}
