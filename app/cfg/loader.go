package cfg

import (
	"cmp"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Feed list
	FeedsPath    string `long:"path" env:"FEEDS_PATH" description:"File with feed URL templates, one per line" required:"true"`
	SettingsPath string `long:"settings" env:"SETTINGS_PATH" description:"Optional YAML file with window, timeouts, notifier icon and mute filters"`

	// Timing
	ToastWait     int `long:"toast" env:"TOAST_WAIT" default:"5" description:"Seconds to wait after each notification"`
	CycleInterval int `long:"interval" env:"CYCLE_INTERVAL" default:"600" description:"Seconds between polling cycles"`

	// Delivery
	Notifiers []string `long:"notifier" choice:"desktop" choice:"console" default:"desktop" default:"console" description:"Notification targets (repeatable)"`
	UserAgent string   `long:"user-agent" env:"USER_AGENT" default:"RSS Toast/1.0" description:"User agent string for HTTP requests"`

	// Operation
	ListenAddr string `long:"listen" env:"LISTEN_ADDR" description:"Address for the status server (e.g., 127.0.0.1:8080); disabled when empty"`
	LogFile    string `long:"log-file" env:"LOG_FILE" description:"Rotating log file; logs go to stderr only when empty"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	Check      bool   `long:"check" description:"Fetch every feed once, report what was found and exit"`
}

// Load parses args (without the program name) and the environment.
// It returns nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validate(&raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Cfg{
		FeedsPath:     raw.FeedsPath,
		SettingsPath:  raw.SettingsPath,
		ToastWait:     time.Duration(raw.ToastWait) * time.Second,
		CycleInterval: time.Duration(raw.CycleInterval) * time.Second,
		Notifiers:     raw.Notifiers,
		UserAgent:     raw.UserAgent,
		ListenAddr:    raw.ListenAddr,
		LogFile:       raw.LogFile,
		Debug:         raw.Debug,
		Check:         raw.Check,
		Version:       GetVersion(),
	}

	return cfg, nil
}

func validate(raw *rawCfg) error {
	if raw.ToastWait < 0 {
		return fmt.Errorf("toast wait must be non-negative")
	}
	if raw.CycleInterval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	info, err := os.Stat(raw.FeedsPath)
	if err != nil {
		return fmt.Errorf("feed list: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("feed list %s is a directory", raw.FeedsPath)
	}

	return nil
}
