package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfigDefaults(t *testing.T) {
	cfg, err := LoadFileConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, OutputManifest, cfg.Output)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "output: yaml\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := LoadFileConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their defaults")
}

func TestLoadFileConfigAltName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte("output: json\n"), 0o644))

	cfg, err := LoadFileConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadFileConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: yaml\n"), 0o644))
	t.Setenv("DECLARGO_OUTPUT", "json")
	t.Setenv("DECLARGO_LOG_LEVEL", "warn")

	cfg, err := LoadFileConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output, "environment overrides the file")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFileConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{invalid"), 0o644))

	_, err := LoadFileConfig(dir)
	assert.Error(t, err)
}
