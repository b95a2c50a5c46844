// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Platform is a host platform with an operating system and an
// optional semantic version of it.
type Platform struct {
	OS      string
	Version string
}

// CurrentPlatform returns the platform of the running program,
// with an unknown version.
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS}
}

// String returns the platform as a string in the form "os/version",
// or just "os" if the version is unknown.
func (p Platform) String() string {
	if p.Version == "" {
		return p.OS
	}
	return p.OS + "/" + p.Version
}

// SetString sets the platform from the given string of format os[/version].
// The version must be a valid semantic version.
func (p *Platform) SetString(platform string) error {
	os, version, found := strings.Cut(platform, "/")
	if os == "" {
		return fmt.Errorf("config: missing operating system in platform %q", platform)
	}
	if found {
		if _, err := semver.NewVersion(version); err != nil {
			return fmt.Errorf("config: invalid version in platform %q: %w", platform, err)
		}
	}
	*p = Platform{OS: os, Version: version}
	return nil
}

// SemVer returns the parsed version of the platform,
// or nil if it is unknown or invalid.
func (p Platform) SemVer() *semver.Version {
	if p.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return nil
	}
	return v
}

// MarshalText implements [encoding.TextMarshaler].
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Platform) UnmarshalText(text []byte) error {
	return p.SetString(string(text))
}
