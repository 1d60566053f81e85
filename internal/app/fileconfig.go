package app

import (
	"os"
	"path/filepath"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	kfile "github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the optional project config file.
const ConfigFileName = "declargo.yaml"

// ConfigFileNameAlt is the alternate name of the project config file.
const ConfigFileNameAlt = "declargo.yml"

// FileConfig holds the settings that may come from the project config file or
// the DECLARGO_ environment. Flags override these.
type FileConfig struct {
	Output string `koanf:"output"`
	Log    struct {
		Format string `koanf:"format"`
		Level  string `koanf:"level"`
	} `koanf:"log"`
}

// LoadFileConfig merges built-in defaults, the project config file in dir (if
// any), and DECLARGO_-prefixed environment variables, in that order of
// precedence.
func LoadFileConfig(dir string) (*FileConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"output":     OutputManifest,
		"log.format": "text",
		"log.level":  "info",
	}, "."), nil); err != nil {
		return nil, err
	}

	if path := findConfigFile(dir); path != "" {
		if err := k.Load(kfile.Provider(path), kyaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("DECLARGO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "DECLARGO_")), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg FileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile finds the config file in the given directory. Returns empty
// string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}
