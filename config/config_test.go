// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	c := Default()
	c.Cache.TTL = Duration(2 * time.Second)
	c.Platform = Platform{OS: "ios", Version: "17.2.0"}
	c.LogLevel = "debug"
	c.ShowInternal = true
	return c
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, 5*time.Second, time.Duration(c.Cache.TTL))
	assert.False(t, c.ShowSystemElements)
	assert.Equal(t, slog.LevelWarn, c.Level())
}

func TestSaveLoad(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inspect"+ext)
			c := testConfig()
			require.NoError(t, Save(c, path))
			lc, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, c, lc)
		})
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.toml")
	require.NoError(t, os.WriteFile(path, []byte("show-internal = true\n[cache]\nttl = \"250ms\"\n"), 0666))
	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.ShowInternal)
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, 250*time.Millisecond, time.Duration(c.Cache.TTL))
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "inspect.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  ttl: soon\n"), 0666))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	c := testConfig()
	nc := c.Clone()
	assert.Equal(t, c, nc)
	nc.Cache.Enabled = false
	nc.Platform.Version = "18.0.0"
	assert.True(t, c.Cache.Enabled)
	assert.Equal(t, "17.2.0", c.Platform.Version)
}

func TestPlatform(t *testing.T) {
	var p Platform
	require.NoError(t, p.SetString("ios/17.2"))
	assert.Equal(t, "ios", p.OS)
	assert.Equal(t, "ios/17.2", p.String())
	require.NotNil(t, p.SemVer())
	assert.Equal(t, uint64(17), p.SemVer().Major())

	require.NoError(t, p.SetString("linux"))
	assert.Nil(t, p.SemVer())

	assert.Error(t, p.SetString("/1.0"))
	assert.Error(t, p.SetString("ios/new"))
	assert.Equal(t, "linux", p.String())
}

func TestLevel(t *testing.T) {
	c := Default()
	c.LogLevel = "error"
	assert.Equal(t, slog.LevelError, c.Level())
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.yaml")
	require.NoError(t, Save(Default(), path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loaded := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { loaded <- c })
	}()

	c := testConfig()
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case lc := <-loaded:
			if lc.ShowInternal {
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-tick.C:
			// the watcher may not be registered yet, so keep writing
			require.NoError(t, Save(c, path))
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}
}
