package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openelearn/scormpack/pkg/scormpack"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the optional per-project processing options read
// from scormpack.yaml. All fields have working defaults; an absent file
// is not an error for callers that treat ErrConfigNotFound as "use
// defaults".
type ProjectConfig struct {
	// DefaultVersion is the SCORM version assumed when the caller passes
	// none. Empty means scormpack.Version2004.
	DefaultVersion string `yaml:"default_version,omitempty"`

	// MaxArchiveSize caps the archive size in bytes accepted by the CLI.
	// Zero means scormpack.DefaultMaxArchiveSize.
	MaxArchiveSize int64 `yaml:"max_archive_size,omitempty"`

	// MimeOverrides adds or replaces extension-to-MIME mappings,
	// keyed by extension including the leading dot.
	MimeOverrides map[string]string `yaml:"mime_overrides,omitempty"`
}

// ConfigFileName is the well-known project config file name.
const ConfigFileName = "scormpack.yaml"

// Load reads the project config from sourcePath/scormpack.yaml.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values without applying defaults.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if c.DefaultVersion != "" && !scormpack.SupportedVersion(c.DefaultVersion) {
		errs = append(errs, fmt.Errorf("default_version must be %q or %q: %w",
			scormpack.Version12, scormpack.Version2004, scormpack.ErrInvalidConfig))
	}
	if c.MaxArchiveSize < 0 {
		errs = append(errs, fmt.Errorf("max_archive_size cannot be negative: %w", scormpack.ErrInvalidConfig))
	}
	for ext := range c.MimeOverrides {
		if len(ext) < 2 || ext[0] != '.' {
			errs = append(errs, fmt.Errorf("mime_overrides key %q must start with a dot: %w", ext, scormpack.ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// Version returns the effective default SCORM version.
func (c *ProjectConfig) Version() string {
	if c == nil || c.DefaultVersion == "" {
		return scormpack.Version2004
	}
	return c.DefaultVersion
}

// SizeLimit returns the effective archive size cap in bytes.
func (c *ProjectConfig) SizeLimit() int64 {
	if c == nil || c.MaxArchiveSize == 0 {
		return scormpack.DefaultMaxArchiveSize
	}
	return c.MaxArchiveSize
}
