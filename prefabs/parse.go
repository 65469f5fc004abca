package prefabs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("prefabs: unsupported config format")

// Parse decodes data according to the extension of name and flattens it into
// Values.
func Parse(name string, data []byte) (Values, error) {
	var (
		raw map[string]any
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	case ".tengo":
		raw, err = runTengo(data)
	case ".lua":
		raw, err = runLua(name, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("prefabs: parse %s: %w", name, err)
	}

	out := Values{}
	for k, v := range raw {
		flatten(k, v, out)
	}
	return out, nil
}

func flatten(key string, raw any, out Values) {
	switch m := raw.(type) {
	case map[string]any:
		out[key] = m
		for k, v := range m {
			flatten(key+"."+k, v, out)
		}
	case map[any]any:
		conv := make(map[string]any, len(m))
		for k, v := range m {
			conv[fmt.Sprint(k)] = v
		}
		flatten(key, conv, out)
	case []map[string]any:
		list := make([]any, len(m))
		for i := range m {
			list[i] = m[i]
		}
		out[key] = list
	default:
		out[key] = raw
	}
}

// IsConfigFile reports whether path has an extension Parse understands.
func IsConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml", ".tengo", ".lua":
		return true
	default:
		return false
	}
}
