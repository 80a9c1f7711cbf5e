package config

import (
	"log/slog"
	"os"
)

// ConfigFile is the name of the project-level config file.
const ConfigFile = "dcatqa.yaml"

// EnvConfigPath names the environment variable overriding the config path.
const EnvConfigPath = "DCATQA_CONFIG"

// Loader resolves configuration with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load resolves configuration in order: defaults, then the file named by
// DCATQA_CONFIG, then dcatqa.yaml in the working directory. A missing file
// is not an error; a malformed one is logged and skipped.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	paths := []string{}
	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, ConfigFile)

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			l.logger.Warn("skipping config file", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		l.logger.Debug("loaded config", slog.String("path", path))
		cfg.Merge(fileCfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
