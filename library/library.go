// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package library maps element classes to the libraries that contribute
// property descriptors for them. Resolution is by capability: an element
// receives the descriptors of every library whose target class appears
// anywhere in its class chain, not only the most derived one.
package library

import (
	"image"

	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/property"
)

// Library contributes property descriptors for the elements of one class.
type Library interface {

	// Target returns the class of elements that the library applies to.
	// The library also applies to every subclass of it.
	Target() *element.Class

	// Descriptors returns the ordered property descriptors of the given
	// element, or nil if the library has nothing to contribute for it.
	// Properties that do not apply to the element are omitted silently.
	Descriptors(el element.Element) []property.Descriptor
}

// Iconer is an optional interface that libraries can implement
// to provide an icon for the elements that they apply to.
type Iconer interface {

	// Icon returns the icon of the given element, or nil if there is none.
	Icon(el element.Element) image.Image
}

// Func is a [Library] made from functions.
type Func struct {

	// Class is the target class.
	Class *element.Class

	// Make returns the descriptors of an element.
	Make func(el element.Element) []property.Descriptor

	// IconFunc optionally returns the icon of an element.
	IconFunc func(el element.Element) image.Image
}

// New returns a new [Func] library for the given class.
func New(class *element.Class, make func(el element.Element) []property.Descriptor) *Func {
	return &Func{Class: class, Make: make}
}

// SetIcon sets the [Func.IconFunc].
func (f *Func) SetIcon(icon func(el element.Element) image.Image) *Func {
	f.IconFunc = icon
	return f
}

func (f *Func) Target() *element.Class { return f.Class }

func (f *Func) Descriptors(el element.Element) []property.Descriptor {
	if f.Make == nil {
		return nil
	}
	return f.Make(el)
}

func (f *Func) Icon(el element.Element) image.Image {
	if f.IconFunc == nil {
		return nil
	}
	return f.IconFunc(el)
}
