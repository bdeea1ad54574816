// Package config reads the optional tap.toml file at the project root, which
// carries per-project defaults that command-line flags override.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const Filename = "tap.toml"

// Config holds per-project defaults.
//
//	[defaults]
//	build-system = "meson"
//	build-mode   = "release"
//	jobs         = 8
//
//	[install]
//	prefix = "/opt/myproj"
type Config struct {
	Defaults DefaultsSection `toml:"defaults"`
	Install  InstallSection  `toml:"install"`
}

// DefaultsSection defines the [defaults] section
type DefaultsSection struct {
	BuildSystem string `toml:"build-system"`
	BuildMode   string `toml:"build-mode"`
	Jobs        int    `toml:"jobs"`
}

// InstallSection defines the [install] section
type InstallSection struct {
	Prefix string `toml:"prefix"`
}

// Load reads tap.toml from the project root. A missing file is not an error
// and yields a zero config.
func Load(root string) (*Config, error) {
	f, err := os.Open(filepath.Join(root, Filename))
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Filename, err)
	}
	return cfg, nil
}

func Parse(rdr io.Reader) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(rdr)
	if err := dec.Decode(&cfg); err != nil {
		if derr, ok := err.(*toml.DecodeError); ok {
			return nil, errors.New(derr.String())
		}
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Defaults.BuildSystem {
	case "", "make", "cmake", "meson":
	default:
		return fmt.Errorf("unknown build-system %q (must be make, cmake or meson)", c.Defaults.BuildSystem)
	}
	switch c.Defaults.BuildMode {
	case "", "debug", "release":
	default:
		return fmt.Errorf("unknown build-mode %q (must be debug or release)", c.Defaults.BuildMode)
	}
	if c.Defaults.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Defaults.Jobs)
	}
	return nil
}
