// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import "strconv"

// Kinds are the kinds of [Descriptor]s.
type Kinds int32

const (
	// KindGroupHeader is a non-interactive title for the rows below it.
	KindGroupHeader Kinds = iota

	// KindSeparator is a non-interactive divider between rows.
	KindSeparator

	// KindToggle is an on/off switch.
	KindToggle

	// KindStepper is a numeric value with increment and decrement.
	KindStepper

	// KindColorPicker is an optional color.
	KindColorPicker

	// KindImagePicker is an optional image.
	KindImagePicker

	// KindOptions is a choice of one of a list of titled options.
	KindOptions

	// KindTextField is a single line of text.
	KindTextField

	// KindTextView is multiple lines of text.
	KindTextView

	// KindSegmented is a choice of one of a small group of text or image segments.
	KindSegmented

	// KindGeometry is a composite rect, point, size, insets, or offset value.
	KindGeometry

	// KindsN is the number of kinds.
	KindsN
)

var kindNames = [...]string{
	KindGroupHeader: "GroupHeader",
	KindSeparator:   "Separator",
	KindToggle:      "Toggle",
	KindStepper:     "Stepper",
	KindColorPicker: "ColorPicker",
	KindImagePicker: "ImagePicker",
	KindOptions:     "Options",
	KindTextField:   "TextField",
	KindTextView:    "TextView",
	KindSegmented:   "Segmented",
	KindGeometry:    "Geometry",
}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsControl returns whether rows of this kind are interactive.
// Only group headers and separators are not.
func (k Kinds) IsControl() bool {
	return k != KindGroupHeader && k != KindSeparator
}
