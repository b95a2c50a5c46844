// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element defines the adapter through which the inspector reads a
// host's live UI element tree, and the capability [Class]es that are used
// to match elements to property libraries.
package element

import (
	"cogentcore.org/core/math32"
)

// ID is an opaque identity that is stable for the lifetime
// of one live element.
type ID uint64

// Element is the interface that a host implements for each node of its
// live UI tree. The inspector never owns an Element; it only reads from it
// while building a snapshot and writes to it through property setters.
type Element interface {

	// ID returns the stable identity of the element.
	ID() ID

	// DisplayName returns a short human readable name for the element.
	DisplayName() string

	// Class returns the capability class of the element. It must not be nil.
	Class() *Class

	// Children returns the direct children of the element in their
	// natural (front to back) order.
	Children() []Element

	// Frame returns the geometry of the element in its parent's coordinates.
	Frame() math32.Box2

	// IsSystem returns whether the element belongs to the host toolkit
	// rather than to the application.
	IsSystem() bool

	// IsInternal returns whether the element is an implementation detail
	// of another element, such as the parts of a composite widget.
	IsInternal() bool

	// CanHostInspector returns whether the element can be inspected.
	CanHostInspector() bool

	// AccessibilityID returns the accessibility identifier of the element,
	// and whether it has one.
	AccessibilityID() (string, bool)
}

// Liveness is an optional interface that elements can implement to report
// that they have been torn down. Elements that are no longer alive are
// skipped when building a snapshot.
type Liveness interface {
	Alive() bool
}

// IsAlive returns whether the given element can be read: it must be
// non-nil and, if it implements [Liveness], report that it is alive.
func IsAlive(el Element) bool {
	if el == nil {
		return false
	}
	if lv, ok := el.(Liveness); ok {
		return lv.Alive()
	}
	return true
}
