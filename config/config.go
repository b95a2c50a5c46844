// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of an inspector session,
// which can be loaded from and saved to TOML and YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jinzhu/copier"

	"cogentcore.org/inspect/base/logx"
)

// ErrUnknownFormat is returned when a config file has an
// extension that does not correspond to a known format.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config is the configuration of an inspector session.
type Config struct {

	// Cache configures the snapshot cache.
	Cache Cache `toml:"cache" yaml:"cache"`

	// Platform is the host platform, whose version determines
	// which version-dependent properties are shown.
	Platform Platform `toml:"platform" yaml:"platform"`

	// LogLevel is the minimum level of log messages
	// (debug, info, warn, or error).
	LogLevel string `toml:"log-level" yaml:"log-level"`

	// ShowSystemElements is whether the default layers
	// include elements that belong to the host toolkit.
	ShowSystemElements bool `toml:"show-system-elements" yaml:"show-system-elements"`

	// ShowInternal is whether internal elements are inspectable.
	ShowInternal bool `toml:"show-internal" yaml:"show-internal"`
}

// Cache configures the snapshot cache.
type Cache struct {

	// Enabled is whether snapshots are cached. If it is false,
	// a new snapshot is built for every lookup.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// TTL is how long a cached snapshot is used before it is rebuilt.
	TTL Duration `toml:"ttl" yaml:"ttl"`
}

// Duration is a [time.Duration] that is stored as text (eg: 5s).
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cache: Cache{
			Enabled: true,
			TTL:     Duration(5 * time.Second),
		},
		Platform: CurrentPlatform(),
		LogLevel: "warn",
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	nc := &Config{}
	if err := copier.CopyWithOption(nc, c, copier.Option{DeepCopy: true}); err != nil {
		slog.Error("config.Clone: copying config", "err", err)
		*nc = *c
	}
	return nc
}

// Level returns the [slog.Level] for [Config.LogLevel],
// defaulting to [logx.UserLevel] if it is empty or invalid.
func (c *Config) Level() slog.Level {
	lvl, err := logx.LevelFromString(c.LogLevel)
	if err != nil {
		return logx.UserLevel
	}
	return lvl
}
