package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the default config file location.
const EnvPath = "L2QUIZ_CONFIG"

// Config is the user configuration. The question set is fixed and has no
// entry here.
type Config struct {
	Log struct {
		// Level is a slog level name: debug, info, warn or error.
		Level string `yaml:"level"`
		// File receives log output while the TUI owns the terminal.
		// "-" discards it.
		File string `yaml:"file"`
	} `yaml:"log"`
	UI struct {
		AltScreen bool `yaml:"alt_screen"`
		Splash    bool `yaml:"splash"`
	} `yaml:"ui"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.UI.AltScreen = true
	cfg.UI.Splash = true
	return cfg
}

// Load reads YAML config from path on top of Default. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the config path from L2QUIZ_CONFIG, falling back to
// $XDG_CONFIG_HOME/l2quiz/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := xdgDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "l2quiz", "config.yaml"), nil
}

// DefaultLogPath returns $XDG_STATE_HOME/l2quiz/l2quiz.log and creates its
// directory.
func DefaultLogPath() (string, error) {
	dir, err := xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "l2quiz", "l2quiz.log")
	return p, EnsureDir(p)
}

func xdgDir(env, fallback string) (string, error) {
	if d := os.Getenv(env); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, fallback), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
