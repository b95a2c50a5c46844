// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"image"
	"image/color"

	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/library"
	"cogentcore.org/inspect/mutation"
	"cogentcore.org/inspect/snapshot"
)

// Host is what the host application provides to an inspector [Context].
type Host struct {

	// Root is the root of the live element tree.
	Root element.Element

	// Layers are the layers offered for the tree. If there are none,
	// a single layer with every element is used.
	Layers []snapshot.Layer

	// Libraries are registered after the built-in libraries,
	// so their rows come after the built-in rows of the same class.
	Libraries []library.Library

	// ColorScheme optionally returns the color used to outline the given
	// element. A nil color falls back to the depth palette.
	ColorScheme func(el element.Element) color.Color

	// IconOverride optionally returns the icon of the given element,
	// taking precedence over the icons of the libraries.
	IconOverride func(el element.Element) image.Image

	// Delegate is optionally notified around every edit.
	Delegate mutation.Delegate
}

// DepthPalette are the default outline colors, indexed by depth.
var DepthPalette = []color.RGBA{
	{0x00, 0x7a, 0xff, 0xff},
	{0x34, 0xc7, 0x59, 0xff},
	{0xff, 0x95, 0x00, 0xff},
	{0xaf, 0x52, 0xde, 0xff},
	{0xff, 0x2d, 0x55, 0xff},
	{0x5a, 0xc8, 0xfa, 0xff},
}
