package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "license-inspector", cfg.Inspector.Command)
	assert.Empty(t, cfg.Copyrights.Garbage)
}

func TestLoad_OverridesAndGarbageList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attriscan.toml")
	content := `
log_level = "debug"

[inspector]
command = "my-inspector"
timeout_sec = 30

[copyrights]
garbage = ["COPYRIGHT HOLDER", "<year> <owner>"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-inspector", cfg.Inspector.Command)
	assert.Equal(t, 30, cfg.Inspector.TimeoutSec)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"COPYRIGHT HOLDER", "<year> <owner>"}, cfg.Copyrights.Garbage)
	// Untouched keys keep their defaults.
	assert.Equal(t, "attriscan_out", cfg.Output.Dir)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
