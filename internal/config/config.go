// Package config persists benchmark settings as JSON under ~/.boxfinder/.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/boxkit/boxfinder/internal/engine"
)

// Settings holds the benchmark defaults the CLI starts from. Command-line
// flags override individual fields per run.
type Settings struct {
	Parallel  bool    `json:"parallel"`   // Time strategies concurrently
	Check     bool    `json:"check"`      // Verify cross-strategy equivalence after timing
	Tolerance float64 `json:"tolerance"`  // Coordinate tolerance for set equality
	LogLevel  string  `json:"log_level"`  // logrus level name
}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		Parallel:  false,
		Check:     false,
		Tolerance: engine.DefaultTolerance,
		LogLevel:  "warning",
	}
}

// DefaultDir returns the default directory for configuration.
// On all platforms this is ~/.boxfinder/
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".boxfinder")
}

// DefaultPath returns the default path for the settings file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// Save persists settings to the given path as JSON, creating any missing
// parent directories.
func Save(path string, s Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads settings from the given path. If the file does not exist, it
// returns Default with no error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, err
	}
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if s.Tolerance <= 0 {
		s.Tolerance = engine.DefaultTolerance
	}
	return s, nil
}
