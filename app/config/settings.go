package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSettings reads optional YAML settings. An empty path yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	// pause_ms: 0 disables the pause, so absence is marked separately
	settings := Settings{PauseMillis: -1}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}

		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

		if err := validate(&settings); err != nil {
			return nil, fmt.Errorf("invalid settings %s: %w", path, err)
		}
	}

	setDefaults(&settings)

	return &settings, nil
}

// setDefaults applies default values to settings
func setDefaults(s *Settings) {
	if s.WindowHours == 0 {
		s.WindowHours = defaultWindowHours
	}
	if s.PauseMillis < 0 {
		s.PauseMillis = defaultPauseMillis
	}
	if s.Timeout == 0 {
		s.Timeout = defaultTimeout
	}
	if s.MaxBodyBytes == 0 {
		s.MaxBodyBytes = defaultMaxBodyBytes
	}
}

// validate validates the settings
func validate(s *Settings) error {
	if s.WindowHours < 0 {
		return fmt.Errorf("window must be positive")
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if s.MaxBodyBytes < 0 {
		return fmt.Errorf("max body bytes must be non-negative")
	}

	validFields := map[string]bool{
		"title": true,
		"link":  true,
	}

	for i, filter := range s.Filters {
		if !validFields[filter.Field] {
			return fmt.Errorf("invalid filter field at index %d: %s", i, filter.Field)
		}
		if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
			return fmt.Errorf("filter at index %d must have at least one include or exclude rule", i)
		}
	}

	return nil
}
