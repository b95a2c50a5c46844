// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"image"
	"image/color"
	"slices"
	"sync/atomic"

	"cogentcore.org/core/math32"
)

// idCounter is atomically incremented to assign new [Basic] IDs.
var idCounter atomic.Uint64

// Insets are the padding distances on the four sides of a view.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// Basic is a simple in-memory [Element] that keeps all of its state in
// fields. It is used by hosts that mirror their UI into a plain tree, by
// the examples, and by tests. It implements the capability interfaces that
// the built-in libraries look for.
//
// All Basic elements must be made with [NewBasic].
type Basic struct {
	id       ID
	name     string
	class    *Class
	parent   *Basic
	children []*Basic
	detached bool

	frame         math32.Box2
	system        bool
	internal      bool
	noInspector   bool
	accessibility string

	hidden      bool
	alpha       float32
	background  color.Color
	padding     Insets
	enabled     bool
	on          bool
	value       float64
	text        string
	placeholder string
	alignment   int
	lines       int
	keyboard    int
	img         image.Image
}

// NewBasic returns a new [Basic] element of the given class with the
// given name, adding it to the given optional parent.
func NewBasic(class *Class, name string, parent ...*Basic) *Basic {
	if class == nil {
		class = ViewClass
	}
	b := &Basic{
		id:      ID(idCounter.Add(1)),
		name:    name,
		class:   class,
		alpha:   1,
		enabled: true,
		lines:   1,
	}
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AddChild(b)
	}
	return b
}

// AddChild adds the given element to the end of the children of b,
// removing it from any previous parent first.
func (b *Basic) AddChild(kid *Basic) {
	if kid.parent != nil {
		kid.parent.removeChild(kid)
	}
	kid.parent = b
	b.children = append(b.children, kid)
}

func (b *Basic) removeChild(kid *Basic) {
	if i := slices.Index(b.children, kid); i >= 0 {
		b.children = slices.Delete(b.children, i, i+1)
	}
	kid.parent = nil
}

// Remove detaches b from its parent and marks it and all of its
// descendants as no longer alive.
func (b *Basic) Remove() {
	if b.parent != nil {
		b.parent.removeChild(b)
	}
	b.walk(func(k *Basic) { k.detached = true })
}

func (b *Basic) walk(fun func(k *Basic)) {
	fun(b)
	for _, k := range b.children {
		k.walk(fun)
	}
}

// Parent returns the parent of b, or nil if it is a root.
func (b *Basic) Parent() *Basic { return b.parent }

// Kids returns the typed children of b. The slice must not be modified.
func (b *Basic) Kids() []*Basic { return b.children }

// Element interface:

func (b *Basic) ID() ID              { return b.id }
func (b *Basic) DisplayName() string { return b.name }
func (b *Basic) Class() *Class       { return b.class }
func (b *Basic) Frame() math32.Box2  { return b.frame }
func (b *Basic) IsSystem() bool      { return b.system }
func (b *Basic) IsInternal() bool    { return b.internal }

func (b *Basic) Children() []Element {
	els := make([]Element, len(b.children))
	for i, k := range b.children {
		els[i] = k
	}
	return els
}

func (b *Basic) CanHostInspector() bool {
	return !b.noInspector
}

func (b *Basic) AccessibilityID() (string, bool) {
	return b.accessibility, b.accessibility != ""
}

// Alive implements [Liveness].
func (b *Basic) Alive() bool {
	return b != nil && !b.detached
}

// Classification setters:

func (b *Basic) SetName(name string)          { b.name = name }
func (b *Basic) SetSystem(system bool)        { b.system = system }
func (b *Basic) SetInternal(internal bool)    { b.internal = internal }
func (b *Basic) SetInspectable(ok bool)       { b.noInspector = !ok }
func (b *Basic) SetAccessibilityID(id string) { b.accessibility = id }
func (b *Basic) SetFrame(frame math32.Box2)   { b.frame = frame }

// Properties:

func (b *Basic) IsHidden() bool              { return b.hidden }
func (b *Basic) SetHidden(hidden bool)       { b.hidden = hidden }
func (b *Basic) Alpha() float32              { return b.alpha }
func (b *Basic) SetAlpha(alpha float32)      { b.alpha = math32.Clamp(alpha, 0, 1) }
func (b *Basic) Background() color.Color     { return b.background }
func (b *Basic) SetBackground(c color.Color) { b.background = c }
func (b *Basic) Padding() Insets             { return b.padding }
func (b *Basic) SetPadding(in Insets)        { b.padding = in }
func (b *Basic) IsEnabled() bool             { return b.enabled }
func (b *Basic) SetEnabled(enabled bool)     { b.enabled = enabled }
func (b *Basic) IsOn() bool                  { return b.on }
func (b *Basic) SetOn(on bool)               { b.on = on }
func (b *Basic) Value() float64              { return b.value }
func (b *Basic) SetValue(value float64)      { b.value = value }
func (b *Basic) Text() string                { return b.text }
func (b *Basic) SetText(text string)         { b.text = text }
func (b *Basic) Placeholder() string         { return b.placeholder }
func (b *Basic) SetPlaceholder(p string)     { b.placeholder = p }
func (b *Basic) Alignment() int              { return b.alignment }
func (b *Basic) SetAlignment(align int)      { b.alignment = align }
func (b *Basic) Lines() int                  { return b.lines }
func (b *Basic) SetLines(lines int)          { b.lines = max(lines, 0) }
func (b *Basic) Keyboard() int               { return b.keyboard }
func (b *Basic) SetKeyboard(keyboard int)    { b.keyboard = keyboard }
func (b *Basic) Image() image.Image          { return b.img }
func (b *Basic) SetImage(img image.Image)    { b.img = img }
