// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

func (f Formats) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// FormatOf returns the format of the given file name based on its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Load loads the config from the given file, starting from [Default] so that
// fields missing in the file keep their default values. A leading ~ in the
// path is expanded to the home directory.
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := Decode(c, b, format); err != nil {
		return nil, fmt.Errorf("config: loading %q: %w", path, err)
	}
	return c, nil
}

// Decode decodes the given data in the given format into the given config.
func Decode(c *Config, data []byte, format Formats) error {
	switch format {
	case TOML:
		return toml.NewDecoder(bytes.NewReader(data)).Decode(c)
	case YAML:
		return yaml.Unmarshal(data, c)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// Encode encodes the given config in the given format.
func Encode(c *Config, format Formats) ([]byte, error) {
	switch format {
	case TOML:
		return toml.Marshal(c)
	case YAML:
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// Save saves the given config to the given file, in the format
// that corresponds to its extension.
func Save(c *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	b, err := Encode(c, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0666)
}

// Watch calls the given function with the newly loaded config every time the
// given file is written, until the context is done. It watches the directory
// of the file so that editors which replace the file on save are handled.
// A change that does not load is logged and skipped. Watch blocks; it
// returns nil when the context is done.
func Watch(ctx context.Context, path string, fun func(c *Config)) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			c, err := Load(path)
			if err != nil {
				slog.Warn("config.Watch: reloading config", "path", path, "err", err)
				continue
			}
			fun(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config.Watch: watcher error", "path", path, "err", err)
		}
	}
}
