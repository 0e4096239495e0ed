package config

import (
	"time"
)

const (
	defaultWindowHours  = 12
	defaultPauseMillis  = 100
	defaultTimeout      = 30
	defaultMaxBodyBytes = 5 << 20
)

// GetWindow returns the dedup window as time.Duration
func (s *Settings) GetWindow() time.Duration {
	if s.WindowHours <= 0 {
		return defaultWindowHours * time.Hour
	}
	return time.Duration(s.WindowHours) * time.Hour
}

// GetPause returns the pause between consecutive fetches
func (s *Settings) GetPause() time.Duration {
	if s.PauseMillis < 0 {
		return defaultPauseMillis * time.Millisecond
	}
	return time.Duration(s.PauseMillis) * time.Millisecond
}

// GetTimeout returns the per-request timeout as time.Duration
func (s *Settings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultTimeout * time.Second
	}
	return time.Duration(s.Timeout) * time.Second
}
