package config

// Config holds the reviewer preferences. The core renders according to these
// values but never writes them back; the preferences editor owns mutation.
type Config struct {
	Display     DisplayConfig   `toml:"display"`
	Timeline    TimelineConfig  `toml:"timeline"`
	Sync        SyncConfig      `toml:"sync"`
	Author      AuthorConfig    `toml:"author"`
	Instruments []InstrumentDef `toml:"instruments"`
	Logging     LoggingConfig   `toml:"logging"`
}

type DisplayConfig struct {
	Theme         string `toml:"theme"` // dark or light
	ShowEventLog  bool   `toml:"show_event_log"`
	ShowTimecode  bool   `toml:"show_timecode"`
	ShowShortcuts bool   `toml:"show_shortcuts"`
}

type TimelineConfig struct {
	Density       string  `toml:"density"` // compact or comfortable
	DefaultZoom   float64 `toml:"default_zoom"`
	ExpandedLanes bool    `toml:"expanded_lanes"`
}

type SyncConfig struct {
	HubPort int `toml:"hub_port"` // 0 picks a free port
}

type AuthorConfig struct {
	Name string `toml:"name"`
	Role string `toml:"role"`
}

// InstrumentDef is a custom instrument definition supplied by preferences;
// the renderer honors label and color when drawing matching usage bars.
type InstrumentDef struct {
	Label string `toml:"label"`
	Color string `toml:"color"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
