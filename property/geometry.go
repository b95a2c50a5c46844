// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// ErrFieldRange is returned when a geometry sub-field index is out of range.
var ErrFieldRange = errors.New("property: geometry field index out of range")

// GeometryKinds are the kinds of composite values that a [Geometry] edits.
type GeometryKinds int32

const (
	// GeometryRect is an origin and a size: X, Y, Width, Height.
	GeometryRect GeometryKinds = iota

	// GeometryPoint is X, Y.
	GeometryPoint

	// GeometrySize is Width, Height.
	GeometrySize

	// GeometryInsets are Top, Left, Bottom, Right.
	GeometryInsets

	// GeometryOffset is Horizontal, Vertical.
	GeometryOffset
)

var geometryFields = [...][]string{
	GeometryRect:   {"X", "Y", "Width", "Height"},
	GeometryPoint:  {"X", "Y"},
	GeometrySize:   {"Width", "Height"},
	GeometryInsets: {"Top", "Left", "Bottom", "Right"},
	GeometryOffset: {"Horizontal", "Vertical"},
}

var geometryNames = [...]string{"Rect", "Point", "Size", "Insets", "Offset"}

func (g GeometryKinds) String() string {
	if g < 0 || int(g) >= len(geometryNames) {
		return fmt.Sprintf("GeometryKinds(%d)", int(g))
	}
	return geometryNames[g]
}

// Fields returns the names of the sub-fields of this kind of geometry,
// in the order in which they are stored in a [Composite].
func (g GeometryKinds) Fields() []string {
	if g < 0 || int(g) >= len(geometryFields) {
		return nil
	}
	return geometryFields[g]
}

// Composite is a composite geometry value of up to four fields, laid
// out according to its [GeometryKinds]. Unused trailing fields are zero.
type Composite [4]float32

// RectComposite returns the [GeometryRect] composite of the given box.
func RectComposite(b math32.Box2) Composite {
	sz := b.Size()
	return Composite{b.Min.X, b.Min.Y, sz.X, sz.Y}
}

// Rect returns the box of a [GeometryRect] composite.
func (c Composite) Rect() math32.Box2 {
	return math32.B2(c[0], c[1], c[0]+c[2], c[1]+c[3])
}

// VectorComposite returns the [GeometryPoint], [GeometrySize], or
// [GeometryOffset] composite of the given vector.
func VectorComposite(v math32.Vector2) Composite {
	return Composite{v.X, v.Y}
}

// Vector returns the vector of a two-field composite.
func (c Composite) Vector() math32.Vector2 {
	return math32.Vec2(c[0], c[1])
}

// Geometry is a single row for a composite geometry value. The presentation
// layer shows one numeric field per sub-field, but every edit goes through
// the one setter with the whole composite; see [Geometry.SetField].
type Geometry struct {
	Row[Composite]

	// Geometry is the kind of composite value.
	Geometry GeometryKinds
}

// NewGeometry returns a new [Geometry] of the given kind. The setter may be nil.
func NewGeometry(title string, kind GeometryKinds, get func() Composite, set func(Composite)) *Geometry {
	return &Geometry{Row: Row[Composite]{title, get, set}, Geometry: kind}
}

// NewRect returns a new [GeometryRect] row for a box value.
// The setter may be nil.
func NewRect(title string, get func() math32.Box2, set func(math32.Box2)) *Geometry {
	d := NewGeometry(title, GeometryRect, func() Composite { return RectComposite(get()) }, nil)
	if set != nil {
		d.Set = func(c Composite) { set(c.Rect()) }
	}
	return d
}

// NewVector returns a new two-field row of the given kind for a vector value.
// The setter may be nil.
func NewVector(title string, kind GeometryKinds, get func() math32.Vector2, set func(math32.Vector2)) *Geometry {
	d := NewGeometry(title, kind, func() Composite { return VectorComposite(get()) }, nil)
	if set != nil {
		d.Set = func(c Composite) { set(c.Vector()) }
	}
	return d
}

// Fields returns the names of the sub-fields of the row.
func (d *Geometry) Fields() []string {
	return d.Geometry.Fields()
}

// Field pulls the current value of the sub-field at the given index.
func (d *Geometry) Field(i int) (float32, error) {
	if i < 0 || i >= len(d.Fields()) {
		return 0, fmt.Errorf("%w: %d for %v", ErrFieldRange, i, d.Geometry)
	}
	return d.Get()[i], nil
}

// SetField changes one sub-field: it pulls the whole composite through the
// getter, replaces the field at the given index, and pushes the whole
// composite back through the setter. It does nothing for a read-only row.
func (d *Geometry) SetField(i int, v float32) error {
	if i < 0 || i >= len(d.Fields()) {
		return fmt.Errorf("%w: %d for %v", ErrFieldRange, i, d.Geometry)
	}
	if d.Set == nil {
		return nil
	}
	c := d.Get()
	c[i] = v
	d.Set(c)
	return nil
}

func (d *Geometry) Kind() Kinds   { return KindGeometry }
func (d *Geometry) isDescriptor() {}
