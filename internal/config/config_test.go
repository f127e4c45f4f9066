package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cnmotool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "lenient: true\nlog_level: debug\nexport_format: cbor\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatAuto, cfg.LogFormat)
	assert.Equal(t, "cbor", cfg.ExportFormat)
}

func TestLoadFileEmpty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: blue\n",
		"bad level":     "log_level: loud\n",
		"bad format":    "log_format: xml\n",
		"bad export":    "export_format: json\n",
		"not a mapping": "- a\n- b\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadUsesEnvironment(t *testing.T) {
	path := writeConfig(t, "log_format: json\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)

	// An explicit path wins over the environment.
	other := writeConfig(t, "log_format: text\n")
	cfg, err = Load(other)
	require.NoError(t, err)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
