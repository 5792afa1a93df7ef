// Package config provides configuration management for binfetch. It handles
// loading, validating and saving the YAML configuration that describes the
// resolution endpoint, the credential source and the artifact target inside
// the host's asset tree.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/binfetch/pkg/errors"
	"github.com/glorpus-work/binfetch/pkg/fsutil"
	"github.com/glorpus-work/binfetch/pkg/model"
)

// Config represents the application configuration.
type Config struct {
	// Endpoint is the URL-resolution endpoint.
	Endpoint string `yaml:"endpoint"`

	// Credential selects where the API key comes from.
	Credential CredentialConfig `yaml:"credential"`

	// Target describes the artifact location inside the host's asset tree.
	Target TargetConfig `yaml:"target"`

	// Settings holds general application settings.
	Settings Settings `yaml:"settings"`
}

// TargetConfig describes the artifact target.
type TargetConfig struct {
	// DataRoot is the absolute root of the host's asset tree.
	DataRoot string `yaml:"data_root"`
	// RelDir is the directory under DataRoot the archive is extracted into.
	RelDir string `yaml:"rel_dir"`
	// Probe is the file under RelDir whose presence means installed.
	Probe string `yaml:"probe"`
	// Service is the service identifier sent to the resolution endpoint.
	Service string `yaml:"service"`
	// Version is the platform/version tag sent to the resolution endpoint.
	Version string `yaml:"version"`
}

// Settings represents general application settings.
type Settings struct {
	// Network settings.
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
	DownloadTimeout time.Duration `yaml:"download_timeout"`

	// TempDir overrides where the transient archive is staged.
	TempDir string `yaml:"temp_dir,omitempty"`

	// RefreshCommand, if set, is executed after a successful extraction to
	// make the host re-scan its assets.
	RefreshCommand string `yaml:"refresh_command,omitempty"`

	// Output settings.
	LogLevel string `yaml:"log_level"` // panic, fatal, error, warn, info, debug, trace
}

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for resolution requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultDownloadTimeout is the default timeout for the archive download.
	DefaultDownloadTimeout = 15 * time.Minute

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults. Endpoint and
// target fields have no usable defaults and must come from the config file.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout:     DefaultHTTPTimeout,
			DownloadTimeout: DefaultDownloadTimeout,
			LogLevel:        "info",
		},
	}
}

// LoadConfig loads configuration from a file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "invalid config file path")
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file, replacing it atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "invalid config file path")
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	tempPath := absPath + ".tmp"
	file, err := fsutil.CreateFilePerm(tempPath, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to replace config file")
	}

	return nil
}

// applyDefaults fills zero-valued settings with their defaults.
func (c *Config) applyDefaults() {
	if c.Settings.HTTPTimeout <= 0 {
		c.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Settings.DownloadTimeout <= 0 {
		c.Settings.DownloadTimeout = DefaultDownloadTimeout
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "info"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty: %w", errors.ErrConfigValidation)
	}
	if err := c.Credential.validate(); err != nil {
		return err
	}
	return c.ToTarget().Validate()
}

// ToTarget converts the target configuration into the model type threaded
// through the fetch operation.
func (c *Config) ToTarget() model.Target {
	return model.Target{
		DataRoot: c.Target.DataRoot,
		RelDir:   c.Target.RelDir,
		Probe:    c.Target.Probe,
		Service:  c.Target.Service,
		Version:  c.Target.Version,
	}
}
