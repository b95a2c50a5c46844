// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"github.com/Masterminds/semver/v3"

	"cogentcore.org/core/base/errors"
)

// ParsePlatform parses the given platform version. An empty string
// means that the platform version is unknown, and yields nil.
func ParsePlatform(version string) (*semver.Version, error) {
	if version == "" {
		return nil, nil
	}
	return semver.NewVersion(version)
}

// Since returns whether a property that requires the given semantic version
// constraint (eg: ">= 14.0") is available on the given platform version.
// Libraries use it to omit properties that the host platform does not
// support. An unknown (nil) platform satisfies every constraint. An invalid
// constraint is logged and is never satisfied.
func Since(constraint string, platform *semver.Version) bool {
	if platform == nil {
		return true
	}
	c, err := semver.NewConstraint(constraint)
	if errors.Log(err) != nil {
		return false
	}
	return c.Check(platform)
}

// If returns the descriptor made by the given function if the condition
// is true, and nil otherwise, for use with [Compact].
func If(cond bool, fn func() Descriptor) Descriptor {
	if !cond {
		return nil
	}
	return fn()
}
