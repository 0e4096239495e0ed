package config

// Settings contains tunables for the polling loop that do not belong on the command line
type Settings struct {
	WindowHours  int            `yaml:"window_hours"`
	PauseMillis  int            `yaml:"pause_ms"`
	Timeout      int            `yaml:"timeout"` // seconds
	MaxBodyBytes int64          `yaml:"max_body_bytes"`
	Notify       NotifySettings `yaml:"notify"`
	Filters      []Filter       `yaml:"filters"`
}

// NotifySettings contains desktop notification options
type NotifySettings struct {
	Icon string `yaml:"icon"`
}

// Filter represents a mute rule applied before notifying
type Filter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}
