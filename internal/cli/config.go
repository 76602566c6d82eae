package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServer = "http://localhost:5000"
	ServerEnv     = "HRCTL_SERVER"
)

// FileConfig is $XDG_CONFIG_HOME/hrctl/config.yaml.
type FileConfig struct {
	Server string `yaml:"server"`
}

// ConfigPath returns the config file location, honoring XDG_CONFIG_HOME.
func ConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "hrctl", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hrctl", "config.yaml"), nil
}

// LoadFileConfig reads path. A missing file yields an empty config.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// ResolveServer picks the server URL: flag, then HRCTL_SERVER, then the config file, then the default.
func ResolveServer(flag string) (string, error) {
	if s := strings.TrimSpace(flag); s != "" {
		return s, nil
	}
	if s := strings.TrimSpace(os.Getenv(ServerEnv)); s != "" {
		return s, nil
	}
	path, err := ConfigPath()
	if err != nil {
		return DefaultServer, nil
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		return "", err
	}
	if s := strings.TrimSpace(fc.Server); s != "" {
		return s, nil
	}
	return DefaultServer, nil
}
