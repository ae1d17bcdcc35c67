// Package config loads the optional TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// File represents the TOML configuration file.
//
// Pointer fields distinguish "not set" from zero values so that env vars and
// flags can layer on top.
type File struct {
	DBPath        *string `toml:"db_path"`
	PreferredUnit *string `toml:"preferred_unit"`
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/gymrecap/config.toml or ~/.config/gymrecap/config.toml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "gymrecap", "config.toml")
}

// DefaultDBPath returns the conventional database location,
// $XDG_DATA_HOME/gymrecap/gymrecap.sqlite3 or the ~/.local/share equivalent.
func DefaultDBPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./gymrecap.sqlite3"
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "gymrecap", "gymrecap.sqlite3")
}

// Load reads a TOML config from the given path. A missing file is not an
// error; the zero File is returned.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg File
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
