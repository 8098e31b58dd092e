package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gabe/scrub/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Scrub - surgical procedure review console",
	Long:  `A terminal console for reviewing recorded procedures: multi-feed playback, an editable timeline and a synced event log.`,
}

var configFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "preferences file (default ~/.scrub/config.toml)")
}

func Execute() error {
	return rootCmd.Execute()
}

// configPath resolves the preferences file location
func configPath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".scrub", "config.toml"), nil
}

// loadConfig loads preferences, creating the default file on first run
func loadConfig() (*config.Config, string, error) {
	path, err := configPath()
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create config directory: %w", err)
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load preferences: %w", err)
	}
	return cfg, path, nil
}
