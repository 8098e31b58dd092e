package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "scrub-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.toml")
	configContent := `
[display]
theme = "light"

[timeline]
default_zoom = 2.5
expanded_lanes = true

[sync]
hub_port = 39021

[[instruments]]
label = "Robotic Arm"
color = "#f97316"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.Theme != "light" {
		t.Errorf("expected theme 'light', got '%s'", cfg.Display.Theme)
	}
	if cfg.Timeline.DefaultZoom != 2.5 {
		t.Errorf("expected default_zoom 2.5, got %v", cfg.Timeline.DefaultZoom)
	}
	if !cfg.Timeline.ExpandedLanes {
		t.Error("expected expanded_lanes true")
	}
	if cfg.Sync.HubPort != 39021 {
		t.Errorf("expected hub_port 39021, got %d", cfg.Sync.HubPort)
	}
	if len(cfg.Instruments) != 1 || cfg.Instruments[0].Label != "Robotic Arm" {
		t.Errorf("expected custom instrument definition, got %+v", cfg.Instruments)
	}
	// Unset sections keep defaults
	if !cfg.Display.ShowEventLog {
		t.Error("expected show_event_log default true")
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "scrub-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	def := DefaultConfig()
	if cfg.Display.Theme != def.Display.Theme {
		t.Errorf("expected default theme '%s', got '%s'", def.Display.Theme, cfg.Display.Theme)
	}
	if cfg.Timeline.DefaultZoom != def.Timeline.DefaultZoom {
		t.Errorf("expected default zoom %v, got %v", def.Timeline.DefaultZoom, cfg.Timeline.DefaultZoom)
	}
}

func TestLoadOrCreate(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "scrub-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.toml")

	cfg, err := LoadOrCreate(configPath)
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	if cfg.Display.Theme != "dark" {
		t.Errorf("expected default theme, got '%s'", cfg.Display.Theme)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("expected config file to be written: %v", err)
	}

	// Second call loads the written file
	if _, err := LoadOrCreate(configPath); err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "scrub-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.toml")
	if err := Save(configPath, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 1)
	stop, err := Watch(configPath, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer stop()

	updated := `
[display]
theme = "light"
`
	if err := os.WriteFile(configPath, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.Display.Theme != "light" {
			t.Errorf("expected reloaded theme 'light', got '%s'", cfg.Display.Theme)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never fired")
	}
}
