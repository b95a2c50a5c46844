// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package libraries

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"

	"cogentcore.org/inspect/element"
)

// The capabilities below are the optional interfaces that the built-in
// libraries look for on elements. An element that does not implement one
// of them simply does not get the corresponding rows. [element.Basic]
// implements all of them.

// Namer is an element whose name can be changed.
type Namer interface {
	SetName(name string)
}

// FrameSetter is an element whose frame can be changed.
type FrameSetter interface {
	SetFrame(frame math32.Box2)
}

// Hider is an element that can be hidden.
type Hider interface {
	IsHidden() bool
	SetHidden(hidden bool)
}

// Fader is an element with an opacity between 0 and 1.
type Fader interface {
	Alpha() float32
	SetAlpha(alpha float32)
}

// Backgrounder is an element with an optional background color.
type Backgrounder interface {
	Background() color.Color
	SetBackground(c color.Color)
}

// Padder is an element with padding insets.
type Padder interface {
	Padding() element.Insets
	SetPadding(in element.Insets)
}

// Enabler is an element that can be disabled.
type Enabler interface {
	IsEnabled() bool
	SetEnabled(enabled bool)
}

// Switcher is an element with an on or off state.
type Switcher interface {
	IsOn() bool
	SetOn(on bool)
}

// Valuer is an element with a numeric value.
type Valuer interface {
	Value() float64
	SetValue(value float64)
}

// Texter is an element with text.
type Texter interface {
	Text() string
	SetText(text string)
}

// Placeholderer is an element with placeholder text.
type Placeholderer interface {
	Placeholder() string
	SetPlaceholder(p string)
}

// Aligner is an element with a text alignment,
// which is an index into [Alignments].
type Aligner interface {
	Alignment() int
	SetAlignment(align int)
}

// Liner is an element with a maximum number of lines of text,
// where 0 means no limit.
type Liner interface {
	Lines() int
	SetLines(lines int)
}

// Keyboarder is an element with a keyboard type,
// which is an index into [Keyboards].
type Keyboarder interface {
	Keyboard() int
	SetKeyboard(keyboard int)
}

// Imager is an element that shows an image.
type Imager interface {
	Image() image.Image
	SetImage(img image.Image)
}

// Alignments are the titles of the text alignments of an [Aligner].
// Justified alignment is only offered on platforms that support it;
// see [Label].
var Alignments = []string{"Left", "Center", "Right", "Justified"}

// Keyboards are the titles of the keyboard types of a [Keyboarder].
var Keyboards = []string{"Default", "Email", "Number", "Phone", "URL"}
