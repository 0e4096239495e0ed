package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Loader reads the feed template file and expands it into feed identifiers
type Loader struct {
	path string
}

// NewLoader creates a new feed list loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadAll reads the template file and returns every expanded identifier in file order
func (l *Loader) LoadAll() ([]string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed list: %w", err)
	}

	feeds := ExpandAll(strings.TrimSpace(string(data)))
	if len(feeds) == 0 {
		return nil, fmt.Errorf("feed list %s expands to no feeds", l.path)
	}

	slog.Debug("Loaded feed list", "path", l.path, "feeds", len(feeds))

	return feeds, nil
}
