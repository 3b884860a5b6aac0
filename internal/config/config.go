// Package config resolves where timesince keeps its data.
//
// Resolution order for the data directory, highest priority first:
//
//  1. the --data-dir flag
//  2. the TIMESINCE_DATA_DIR environment variable
//  3. data_dir in <user-config-dir>/timesince/config.yaml
//  4. <user-config-dir>/timesince
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDataDir overrides the data directory when set.
const EnvDataDir = "TIMESINCE_DATA_DIR"

const (
	appDir      = "timesince"
	configFile  = "config.yaml"
	storeFile   = "data.json"
	journalFile = "history.db"
)

// Config holds the settings read from config.yaml.
type Config struct {
	// DataDir is the directory holding the store file and journal.
	DataDir string `yaml:"data_dir"`
}

// Load reads config.yaml from the user config dir.
// A missing file yields a zero Config, not an error.
func Load() (Config, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve user config dir: %w", err)
	}
	return loadFrom(filepath.Join(base, appDir, configFile))
}

func loadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveDataDir picks the data directory, applying the precedence above.
// flagValue is the --data-dir flag ("" when unset).
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return env, nil
	}

	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// StorePath returns the store file path under dataDir.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, storeFile)
}

// JournalPath returns the journal database path under dataDir.
func JournalPath(dataDir string) string {
	return filepath.Join(dataDir, journalFile)
}
