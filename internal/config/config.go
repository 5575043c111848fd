// Package config loads the optional YAML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/workspace-output/config.yaml (or any
// of $XDG_CONFIG_DIRS). A missing file means defaults. Command-line flags
// override file values.
//
//	socket: /run/user/1000/sway-ipc.sock
//	stride: 100
//	wrap: true
//	dry_run: false
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
)

const (
	appName  = "workspace-output"
	fileName = "config.yaml"
)

// Config holds user settings.
type Config struct {
	Socket   string `yaml:"socket,omitempty" json:"socket,omitempty"`
	Stride   int    `yaml:"stride"           json:"stride"`
	Wrap     bool   `yaml:"wrap"             json:"wrap"`
	DryRun   bool   `yaml:"dry_run"          json:"dry_run"`
	LogLevel string `yaml:"log_level"        json:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Stride:   100,
		Wrap:     true,
		LogLevel: "info",
	}
}

// DefaultPath returns where the user config file is expected.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, fileName)
}

// Load reads the config file. With an explicit path the file must exist;
// otherwise the XDG config directories are searched and a missing file
// yields defaults. The returned path is the file that was read, or empty.
func Load(path string) (Config, string, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(appName, fileName))
		if err != nil {
			return Default(), "", nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, "", wserrors.Wrap(wserrors.ErrCodeInvalidInput, err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, "", wserrors.Wrap(wserrors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, path, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Stride <= 0 {
		return wserrors.New(wserrors.ErrCodeInvalidInput, "stride must be positive, got %d", c.Stride)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, wserrors.Wrap(wserrors.ErrCodeInvalidInput, err, "log_level")
	}
	return lvl, nil
}
