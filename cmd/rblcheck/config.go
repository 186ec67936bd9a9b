// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

// fileConfig is the on-disk configuration:
//
//	lists:
//	  - b.barracudacentral.org
//	include_defaults: true
//	timeout: 10s
type fileConfig struct {
	// Lists are blocklist zones to check in addition to (or, with
	// include_defaults: false, instead of) the built-in ones.
	Lists []string `yaml:"lists"`

	// IncludeDefaults controls whether the built-in zones are checked.
	// Unset means true.
	IncludeDefaults *bool `yaml:"include_defaults"`

	// Timeout is the per-lookup resolver timeout, in Go duration
	// syntax ("30s", "1m").
	Timeout string `yaml:"timeout"`
}

// defaultConfigPath is where the config lives when --config is not
// given: the rblcheck subdirectory of the user config directory.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rblcheck", "config.yaml")
}

// loadConfig reads and parses the YAML config file. An explicitly
// given path must exist; a missing file at the default path just means
// an empty configuration.
func loadConfig(path string) (*fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return &fileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &fileConfig{}, nil
		}
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// lookupTimeout resolves the per-lookup timeout: the flag wins, then
// the config file, then zero (meaning the library default).
func (c *fileConfig) lookupTimeout(flag time.Duration) (time.Duration, error) {
	if flag > 0 {
		return flag, nil
	}
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config timeout: %w", err)
	}
	return d, nil
}

// zones assembles the final zone list from the built-in defaults, the
// config file, and repeated --list flags, preserving that order and
// dropping duplicates.
func (c *fileConfig) zones(extra []string, skipDefaults bool) []string {
	include := !skipDefaults
	if c.IncludeDefaults != nil && !*c.IncludeDefaults {
		include = false
	}

	var zones []string
	if include {
		zones = rblcheck.DefaultLists()
	}
	zones = append(zones, c.Lists...)
	zones = append(zones, extra...)

	seen := make(map[string]struct{}, len(zones))
	deduped := zones[:0]
	for _, z := range zones {
		if _, dup := seen[z]; dup {
			continue
		}
		seen[z] = struct{}{}
		deduped = append(deduped, z)
	}
	return deduped
}
