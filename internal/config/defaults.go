package config

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Theme:         "dark",
			ShowEventLog:  true,
			ShowTimecode:  true,
			ShowShortcuts: false,
		},
		Timeline: TimelineConfig{
			Density:       "comfortable",
			DefaultZoom:   1.0,
			ExpandedLanes: false,
		},
		Sync: SyncConfig{
			HubPort: 0,
		},
		Author: AuthorConfig{
			Name: "Attending Surgeon",
			Role: "Surgeon",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "scrub.log",
		},
	}
}
