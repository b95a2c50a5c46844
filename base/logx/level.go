// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the log levels and colored log handler
// used by the inspector.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the lowest [slog.Level] shown by handlers made with a nil
// level in [NewHandler]. It is set from the log level of the inspector config.
var UserLevel = slog.LevelWarn

// LevelFromString returns the [slog.Level] with the given
// case-insensitive name (debug, info, warn, or error).
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx: unknown level %q", s)
}
