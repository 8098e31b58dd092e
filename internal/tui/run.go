package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/scrub/internal/config"
	"github.com/gabe/scrub/internal/export"
	"github.com/gabe/scrub/internal/syncbus"
)

// dataDir is where the console keeps its log, exports and audit trail
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".scrub")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

func openLogger(dir, file string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(filepath.Join(dir, file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

// Run starts the main review console. It hosts the sync hub, writes the
// discovery file and owns the project state for any detached windows.
func Run(cfg *config.Config, cfgPath string) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(dir, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	ApplyTheme(cfg.Display.Theme)

	hub := syncbus.NewHub(logger)
	if err := hub.Start(cfg.Sync.HubPort); err != nil {
		return err
	}
	defer hub.Close()

	addrPath, err := syncbus.PortFilePath()
	if err != nil {
		return err
	}
	if err := syncbus.WriteAddr(addrPath, hub.Addr()); err != nil {
		return err
	}
	defer syncbus.RemoveAddr(addrPath)

	// The owner joins both channels as an ordinary member; the hub never
	// echoes traffic back to its sender.
	cockpit, err := syncbus.Dial(hub.Addr(), syncbus.ChannelCockpit)
	if err != nil {
		return fmt.Errorf("join own hub: %w", err)
	}
	defer cockpit.Close()
	popout, err := syncbus.Dial(hub.Addr(), syncbus.ChannelEventLog)
	if err != nil {
		return fmt.Errorf("join own hub: %w", err)
	}
	defer popout.Close()

	exports, err := export.NewStore(filepath.Join(dir, "exports"))
	if err != nil {
		return err
	}
	audit, err := export.NewAuditLog(filepath.Join(dir, "audit"))
	if err != nil {
		return err
	}

	m := NewModel(cfg, logger, hub, cockpit, popout, exports, audit)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Live preference reload while the console runs
	if cfgPath != "" {
		stop, err := config.Watch(cfgPath, func(fresh *config.Config) {
			p.Send(configReloadMsg{cfg: fresh})
		})
		if err == nil {
			defer stop()
		} else {
			logger.Printf("preferences watcher unavailable: %v", err)
		}
	}

	_, err = p.Run()
	return err
}

// RunCockpit starts the detached cockpit window, discovering the hub from the
// console's address file.
func RunCockpit(cfg *config.Config) error {
	client, err := dialDiscovered(syncbus.ChannelCockpit)
	if err != nil {
		return err
	}
	defer client.Close()

	ApplyTheme(cfg.Display.Theme)
	p := tea.NewProgram(NewCockpitModel(client), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// RunLogWindow starts the log-only popout window
func RunLogWindow(cfg *config.Config) error {
	client, err := dialDiscovered(syncbus.ChannelEventLog)
	if err != nil {
		return err
	}
	defer client.Close()

	ApplyTheme(cfg.Display.Theme)
	p := tea.NewProgram(NewLogWindowModel(client), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func dialDiscovered(channel string) (*syncbus.Client, error) {
	addrPath, err := syncbus.PortFilePath()
	if err != nil {
		return nil, err
	}
	addr, err := syncbus.ReadAddr(addrPath)
	if err != nil {
		return nil, fmt.Errorf("no running console found (is 'scrub review' up?): %w", err)
	}
	return syncbus.Dial(addr, channel)
}
