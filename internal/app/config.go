package app

import "errors"

// Output formats accepted by the -output flag.
const (
	OutputManifest = "manifest"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl file or directory

	Output    string
	LogFormat string
	LogLevel  string
	Validate  bool
	FactsFor  string // node name to bundle environment facts for; empty disables
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case OutputManifest, OutputJSON, OutputYAML:
	default:
		return nil, errors.New("Output must be one of 'manifest', 'json', or 'yaml'")
	}
	return &cfg, nil
}
