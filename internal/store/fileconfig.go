package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LoadConfig reads an adapter configuration file (yaml, json, or toml by
// extension) and returns the normalized, validated Config.
func LoadConfig(path string) (Config, error) {
	clean := filepath.Clean(path)
	// Ensure path points to a regular file to avoid opening directories/special files
	if info, statErr := os.Stat(clean); statErr != nil || !info.Mode().IsRegular() {
		if statErr != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, statErr)
		}
		return Config{}, fmt.Errorf("%w: not a regular file: %s", ErrConfiguration, clean)
	}

	v := viper.New()
	v.SetConfigFile(clean)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
