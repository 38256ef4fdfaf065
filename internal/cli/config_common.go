package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/openelearn/scormpack/internal/config"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

// loadProjectConfig loads godotenv and the project configuration from
// the working directory. An absent scormpack.yaml yields a nil config,
// which every accessor treats as all-defaults.
//
// Priority (highest to lowest): CLI flags > environment > scormpack.yaml.
func loadProjectConfig(logger scormpack.Logger) (*config.ProjectConfig, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			logger.Verbose("no %s found, using defaults", config.ConfigFileName)
			cfg = nil
		} else {
			return nil, err
		}
	}

	if v := os.Getenv("SCORMPACK_DEFAULT_VERSION"); v != "" {
		if !scormpack.SupportedVersion(v) {
			return nil, fmt.Errorf("SCORMPACK_DEFAULT_VERSION must be %q or %q: %w",
				scormpack.Version12, scormpack.Version2004, scormpack.ErrInvalidConfig)
		}
		if cfg == nil {
			cfg = &config.ProjectConfig{}
		}
		cfg.DefaultVersion = v
	}

	return cfg, nil
}

// mimeOverrides returns the configured MIME overrides, tolerating a nil
// config.
func mimeOverrides(cfg *config.ProjectConfig) map[string]string {
	if cfg == nil {
		return nil
	}
	return cfg.MimeOverrides
}

// readArchive loads the archive blob, applying the configured size cap
// before any processing happens.
func readArchive(path string, cfg *config.ProjectConfig) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if limit := cfg.SizeLimit(); info.Size() > limit {
		return nil, fmt.Errorf("%s is %d bytes, limit is %d: %w",
			path, info.Size(), limit, scormpack.ErrArchiveTooLarge)
	}
	return os.ReadFile(path)
}
