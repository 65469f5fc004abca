package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultName is the configuration file shipped inside the binary.
const DefaultName = "game.yaml"

//go:embed game.yaml
var DefaultFS embed.FS

// Load reads a configuration file from disk, falling back to the embedded copy
// of the same base name.
func Load(name string) ([]byte, error) {
	if name == "" {
		name = DefaultName
	}
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("prefabs: read %s: %w", name, err)
	}
	data, embedErr := DefaultFS.ReadFile(filepath.Base(name))
	if embedErr != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", name, err)
	}
	return data, nil
}

// LoadValues loads and parses a configuration file.
func LoadValues(name string) (Values, error) {
	if name == "" {
		name = DefaultName
	}
	data, err := Load(name)
	if err != nil {
		return nil, err
	}
	return Parse(name, data)
}

// Defaults parses the embedded configuration. It is the fallback used when a
// restart cannot read the configured file.
func Defaults() Values {
	data, err := DefaultFS.ReadFile(DefaultName)
	if err != nil {
		return Values{}
	}
	v, err := Parse(DefaultName, data)
	if err != nil {
		return Values{}
	}
	return v
}

// ModTime reports the modification time of name on disk.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(name)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
