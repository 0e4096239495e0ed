package cfg

import "time"

type Cfg struct {
	// Feed list
	FeedsPath    string
	SettingsPath string

	// Timing
	ToastWait     time.Duration
	CycleInterval time.Duration

	// Delivery
	Notifiers []string
	UserAgent string

	// Operation
	ListenAddr string
	LogFile    string
	Debug      bool
	Check      bool
	Version    string
}
