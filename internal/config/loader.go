package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const sokobanFile = "sokoban.yaml"

// LoadSokoban loads Sokoban configuration.
// Search order: customPath -> ~/.sokoban/configs/sokoban.yaml -> ./configs/sokoban.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. Only a failing customPath is an error.
func LoadSokoban(customPath string) (SokobanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSokobanConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeSokoban(data)
		if err != nil {
			return DefaultSokobanConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(sokobanFile), filepath.Join("configs", sokobanFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decodeSokoban(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decodeSokoban(defaultSokobanYAML)
	if err != nil {
		return DefaultSokobanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeSokoban decodes YAML over the defaults and validates the result.
func decodeSokoban(data []byte) (SokobanConfig, error) {
	cfg := DefaultSokobanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "configs", filename)
}
