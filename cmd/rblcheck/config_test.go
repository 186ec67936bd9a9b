// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
lists:
  - b.barracudacentral.org
  - psbl.surriel.com
include_defaults: false
timeout: 10s
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.barracudacentral.org", "psbl.surriel.com"}, cfg.Lists)
	require.NotNil(t, cfg.IncludeDefaults)
	assert.False(t, *cfg.IncludeDefaults)
	assert.Equal(t, "10s", cfg.Timeout)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err, "an explicitly named config file must exist")
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeTempConfig(t, "lists: [unterminated")
	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestLookupTimeout(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		cfg := &fileConfig{Timeout: "10s"}
		d, err := cfg.lookupTimeout(3 * time.Second)
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, d)
	})

	t.Run("config fallback", func(t *testing.T) {
		cfg := &fileConfig{Timeout: "10s"}
		d, err := cfg.lookupTimeout(0)
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, d)
	})

	t.Run("unset", func(t *testing.T) {
		cfg := &fileConfig{}
		d, err := cfg.lookupTimeout(0)
		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("malformed", func(t *testing.T) {
		cfg := &fileConfig{Timeout: "soon"}
		_, err := cfg.lookupTimeout(0)
		assert.Error(t, err)
	})
}

func TestZones(t *testing.T) {
	no := false

	t.Run("defaults plus extras", func(t *testing.T) {
		cfg := &fileConfig{Lists: []string{"a.example"}}
		zones := cfg.zones([]string{"b.example"}, false)
		assert.Equal(t, append(rblcheck.DefaultLists(), "a.example", "b.example"), zones)
	})

	t.Run("config disables defaults", func(t *testing.T) {
		cfg := &fileConfig{Lists: []string{"a.example"}, IncludeDefaults: &no}
		assert.Equal(t, []string{"a.example"}, cfg.zones(nil, false))
	})

	t.Run("flag disables defaults", func(t *testing.T) {
		cfg := &fileConfig{}
		assert.Equal(t, []string{"a.example"}, cfg.zones([]string{"a.example"}, true))
	})

	t.Run("duplicates dropped", func(t *testing.T) {
		cfg := &fileConfig{Lists: []string{"a.example", "a.example"}, IncludeDefaults: &no}
		assert.Equal(t, []string{"a.example"}, cfg.zones([]string{"a.example"}, false))
	})
}
