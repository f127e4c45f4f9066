// Package config loads cnmotool settings.
//
// Settings come from a single YAML file named by the --config flag or the
// CNMOTOOL_CONFIG environment variable. Without either, Default applies.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-lparse/leveldoc"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "CNMOTOOL_CONFIG"

const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	// Lenient decodes corrupted levels with default values and logs a warning
	// for each substitution.
	Lenient bool `yaml:"lenient"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is auto, text or json. Auto picks text on a terminal.
	LogFormat string `yaml:"log_format"`

	// ExportFormat is the snapshot format used when export is given no
	// --format and the output path has no recognized extension.
	ExportFormat string `yaml:"export_format"`
}

func Default() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    LogFormatAuto,
		ExportFormat: string(leveldoc.FormatYAML),
	}
}

// Load reads the file at path, falling back to $CNMOTOOL_CONFIG. If both are
// empty it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the file at path over the defaults. Unknown keys are an
// error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log_format must be auto, text or json, got %q", c.LogFormat)
	}
	if _, err := leveldoc.ParseFormat(c.ExportFormat); err != nil {
		return fmt.Errorf("export_format: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
