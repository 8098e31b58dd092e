package syncbus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The owner process writes its hub address to a discovery file so detached
// windows started later can find it without configuration.

// PortFilePath returns the default discovery file location
func PortFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".scrub", "hub.addr"), nil
}

// WriteAddr records the hub address for detached windows to discover
func WriteAddr(path, addr string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create discovery directory: %w", err)
	}
	return os.WriteFile(path, []byte(addr), 0644)
}

// ReadAddr reads the hub address from the discovery file
func ReadAddr(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// RemoveAddr removes the discovery file; missing files are fine
func RemoveAddr(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
