// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// userLeveler is a [slog.Leveler] that always returns
// the current value of [UserLevel].
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a new text [slog.Handler] that writes to the given
// writer, showing messages at or above the given level. The level is
// colored when the writer is a terminal that supports colors. If level
// is nil, [UserLevel] is used, including later changes to it.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	if level == nil {
		level = userLeveler{}
	}
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(out, lvl)).String())
			return a
		},
	})
}

// LevelColor returns the color used for the given level on the given output.
func LevelColor(out *termenv.Output, lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return out.Color("1")
	case lvl >= slog.LevelWarn:
		return out.Color("3")
	case lvl >= slog.LevelInfo:
		return out.Color("4")
	default:
		return out.Color("8")
	}
}

// SetDefault sets the default [slog.Logger] to one that writes
// to [os.Stderr] using [NewHandler] at [UserLevel].
func SetDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}
