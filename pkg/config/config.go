package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is looked up in the working directory when no
// explicit --config path is given.
const DefaultConfigFile = "pig.toml"

// DefaultThreads is the worker pool size used when neither the config
// file nor the --threads flag sets one.
const DefaultThreads = 4

// Config holds the invocation settings read from an optional TOML file.
type Config struct {
	Threads     int      `toml:"threads"`      // worker pool size, >= 1
	BackupDir   string   `toml:"backup_dir"`   // empty: unique dir under the system temp dir
	ExtraStdlib []string `toml:"extra_stdlib"` // extra first segments classified as standard library
	SkipDirs    []string `toml:"skip_dirs"`    // directory names never descended into
}

// Default returns the built-in configuration. The skip list covers the
// usual Python environment directories.
func Default() Config {
	return Config{
		Threads: DefaultThreads,
		SkipDirs: []string{
			"venv", ".venv", "env", ".env",
			"__pypackages__", "envs", ".virtualenvs",
			"__pycache__",
		},
	}
}

// Load reads a TOML config file on top of the defaults. With an empty
// path the default file name is tried and a missing file is not an
// error; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	return nil
}
