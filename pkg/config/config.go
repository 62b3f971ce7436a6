// 14 Oct 2026

// Package config reads the optional TOML settings file for protein.
// Anything not in the file keeps its default. Command line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	envConfig = "PROTEIN_CONFIG"
	appName   = "protein"
	fileName  = "config.toml"
)

type Input struct {
	File string `toml:"file"` // sequence file, "" or "-" for stdin
}

type Log struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"` // "" means stderr
}

type Report struct {
	Summary bool `toml:"summary"`
}

type Config struct {
	Input  Input  `toml:"input"`
	Log    Log    `toml:"log"`
	Report Report `toml:"report"`
}

func Default() Config {
	return Config{}
}

// ConfigDir is where we look for config.toml if nobody names a file.
func ConfigDir() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path decides which file to read. An explicit name wins, then the
// environment, then the config directory. explicit is true if the
// file was asked for, so it must exist.
func Path(fname string) (path string, explicit bool, err error) {
	if fname != "" {
		return fname, true, nil
	}
	if v := os.Getenv(envConfig); v != "" {
		return v, true, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, fileName), false, nil
}

// Load reads the settings. A missing default file is not an error, but
// a missing file that was asked for by name is.
func Load(fname string) (Config, error) {
	cfg := Default()
	path, explicit, err := Path(fname)
	if err != nil {
		return cfg, err
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Default(), fmt.Errorf("config file %s: unknown key %s", path, undec[0])
	}
	return cfg, nil
}
