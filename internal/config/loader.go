package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/snake.yaml"

// ErrSkipped is returned with the default configuration when a config file
// in an implicit location exists but cannot be used.
var ErrSkipped = errors.New("config file skipped")

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
// An explicit customPath must exist and be valid. Missing implicit files are
// ignored; broken ones are skipped and reported with ErrSkipped next to the
// configuration that was loaded instead.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	var skipped []error
	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			if err = cfg.Validate(); err == nil {
				if len(skipped) > 0 {
					return cfg, fmt.Errorf("%w: %w", ErrSkipped, errors.Join(skipped...))
				}
				return cfg, nil
			}
			err = fmt.Errorf("invalid config %s: %w", path, err)
		}
		skipped = append(skipped, err)
	}

	if len(skipped) > 0 {
		return Default(), fmt.Errorf("%w: %w", ErrSkipped, errors.Join(skipped...))
	}
	return Default(), nil
}

// Default returns the embedded default configuration.
func Default() SnakeConfig {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// loadFile decodes path on top of the defaults.
func loadFile(path string) (SnakeConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
