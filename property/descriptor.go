// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package property provides the closed set of property [Descriptor]s that
// describe one readable and optionally editable row of an element, so that
// a single generic inspector can show and edit any kind of element.
//
// Every interactive descriptor has a title, a required getter that pulls
// the current value from the element, and an optional setter that pushes a
// new value to it. A descriptor without a setter is read-only. Descriptors
// are made fresh each time an element is selected; they do not own the
// element, they only close over it.
package property

import (
	"image"
	"image/color"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Descriptor describes one row of an element's properties.
// It is implemented only by the types in this package:
// [GroupHeader], [Separator], [Toggle], [Stepper], [ColorPicker],
// [ImagePicker], [Options], [TextField], [TextView], [Segmented],
// and [Geometry].
type Descriptor interface {

	// Kind returns the kind of the descriptor.
	Kind() Kinds

	isDescriptor()
}

// Control is implemented by all interactive descriptors,
// which are all descriptors except group headers and separators.
type Control interface {
	Descriptor

	// Label returns the title of the row.
	Label() string

	// Value pulls the current value from the element.
	Value() any

	// HasHandler returns whether the row has a setter.
	HasHandler() bool
}

// Row has the fields shared by all interactive descriptors.
type Row[T any] struct {

	// Title is the title of the row.
	Title string

	// Get pulls the current value from the element. It is required.
	Get func() T

	// Set pushes a new value to the element. If it is nil,
	// the row is read-only.
	Set func(value T)
}

func (r *Row[T]) Label() string { return r.Title }

func (r *Row[T]) Value() any {
	if r.Get == nil {
		var zero T
		return zero
	}
	return r.Get()
}

func (r *Row[T]) HasHandler() bool { return r.Set != nil }

// IsControl returns whether the given descriptor is an interactive row.
func IsControl(d Descriptor) bool {
	return d != nil && d.Kind().IsControl()
}

// HasHandler returns whether the given descriptor has a setter.
// A row for which IsControl is true and HasHandler is false is
// shown disabled.
func HasHandler(d Descriptor) bool {
	c, ok := d.(Control)
	return ok && c.HasHandler()
}

// Title returns the title of the given descriptor, which
// is empty for separators.
func Title(d Descriptor) string {
	switch d := d.(type) {
	case *GroupHeader:
		return d.Title
	case Control:
		return d.Label()
	}
	return ""
}

// Compact returns the given descriptors without any nil ones, keeping
// their order. Libraries use it to omit properties that do not apply.
func Compact(ds ...Descriptor) []Descriptor {
	res := make([]Descriptor, 0, len(ds))
	for _, d := range ds {
		if d == nil {
			continue
		}
		if rv := reflect.ValueOf(d); rv.Kind() == reflect.Pointer && rv.IsNil() {
			continue
		}
		res = append(res, d)
	}
	return res
}

// GroupHeader is a non-interactive title for the rows that follow it.
type GroupHeader struct {
	Title    string
	Subtitle string
}

// NewGroupHeader returns a new [GroupHeader] with the given title.
func NewGroupHeader(title string) *GroupHeader {
	return &GroupHeader{Title: title}
}

// SetSubtitle sets the [GroupHeader.Subtitle].
func (d *GroupHeader) SetSubtitle(subtitle string) *GroupHeader {
	d.Subtitle = subtitle
	return d
}

func (d *GroupHeader) Kind() Kinds   { return KindGroupHeader }
func (d *GroupHeader) isDescriptor() {}

// Separator is a non-interactive divider between rows.
type Separator struct{}

// NewSeparator returns a new [Separator].
func NewSeparator() *Separator { return &Separator{} }

func (d *Separator) Kind() Kinds   { return KindSeparator }
func (d *Separator) isDescriptor() {}

// Toggle is an on/off row.
type Toggle struct {
	Row[bool]
}

// NewToggle returns a new [Toggle]. The setter may be nil.
func NewToggle(title string, get func() bool, set func(bool)) *Toggle {
	return &Toggle{Row[bool]{title, get, set}}
}

func (d *Toggle) Kind() Kinds   { return KindToggle }
func (d *Toggle) isDescriptor() {}

// Number is a type constraint for the values that a [Stepper] can represent.
type Number interface {
	constraints.Integer | constraints.Float
}

// Stepper is a numeric row with a range and a step.
type Stepper struct {
	Row[float64]

	// Min and Max are the inclusive bounds of the value.
	Min, Max float64

	// Step is the amount by which the value is incremented and decremented.
	Step float64

	// Decimals is the number of decimal places shown.
	Decimals int
}

// NewStepper returns a new [Stepper] for a value of any numeric type,
// converting to and from float64. The setter may be nil. Integer steppers
// have a step of 1 and no decimals; float steppers have a step of 0.1 and
// two decimals. The range is unbounded until [Stepper.SetRange] is called.
func NewStepper[T Number](title string, get func() T, set func(T)) *Stepper {
	d := &Stepper{Min: math.Inf(-1), Max: math.Inf(1), Step: 1}
	d.Title = title
	d.Get = func() float64 { return float64(get()) }
	if set != nil {
		d.Set = func(v float64) { set(T(v)) }
	}
	half := 0.5
	if T(half) != 0 {
		d.Step = 0.1
		d.Decimals = 2
	}
	return d
}

// SetRange sets the [Stepper.Min] and [Stepper.Max].
func (d *Stepper) SetRange(lo, hi float64) *Stepper {
	d.Min, d.Max = lo, hi
	return d
}

// SetStep sets the [Stepper.Step].
func (d *Stepper) SetStep(step float64) *Stepper {
	d.Step = step
	return d
}

// SetDecimals sets the [Stepper.Decimals].
func (d *Stepper) SetDecimals(decimals int) *Stepper {
	d.Decimals = decimals
	return d
}

// Clamp returns the given value limited to the range of the stepper.
func (d *Stepper) Clamp(v float64) float64 {
	return min(max(v, d.Min), d.Max)
}

func (d *Stepper) Kind() Kinds   { return KindStepper }
func (d *Stepper) isDescriptor() {}

// ColorPicker is a row for an optional color.
type ColorPicker struct {
	Row[color.Color]

	// AllowsNil is whether the color can be cleared.
	AllowsNil bool
}

// NewColorPicker returns a new [ColorPicker]. The setter may be nil.
func NewColorPicker(title string, get func() color.Color, set func(color.Color)) *ColorPicker {
	return &ColorPicker{Row: Row[color.Color]{title, get, set}, AllowsNil: true}
}

func (d *ColorPicker) Kind() Kinds   { return KindColorPicker }
func (d *ColorPicker) isDescriptor() {}

// ImagePicker is a row for an optional image.
type ImagePicker struct {
	Row[image.Image]

	// AllowsNil is whether the image can be cleared.
	AllowsNil bool
}

// NewImagePicker returns a new [ImagePicker]. The setter may be nil.
func NewImagePicker(title string, get func() image.Image, set func(image.Image)) *ImagePicker {
	return &ImagePicker{Row: Row[image.Image]{title, get, set}, AllowsNil: true}
}

func (d *ImagePicker) Kind() Kinds   { return KindImagePicker }
func (d *ImagePicker) isDescriptor() {}

// Options is a choice of one of a list of titled options. The value is the
// index of the selected option, or -1 if none is selected.
type Options struct {
	Row[int]

	// Options are the titles of the options.
	Options []string

	// EmptyTitle is shown when no option is selected.
	EmptyTitle string
}

// NewOptions returns a new [Options] with the given option titles.
// The setter may be nil.
func NewOptions(title string, options []string, get func() int, set func(int)) *Options {
	return &Options{Row: Row[int]{title, get, set}, Options: options}
}

// SetEmptyTitle sets the [Options.EmptyTitle].
func (d *Options) SetEmptyTitle(title string) *Options {
	d.EmptyTitle = title
	return d
}

// Selected returns the title of the selected option,
// or the empty title if none is selected.
func (d *Options) Selected() string {
	i := d.Get()
	if i < 0 || i >= len(d.Options) {
		return d.EmptyTitle
	}
	return d.Options[i]
}

func (d *Options) Kind() Kinds   { return KindOptions }
func (d *Options) isDescriptor() {}

// TextField is a single line of text.
type TextField struct {
	Row[string]

	// Placeholder is shown when the text is empty.
	Placeholder string
}

// NewTextField returns a new [TextField]. The setter may be nil.
func NewTextField(title string, get func() string, set func(string)) *TextField {
	return &TextField{Row: Row[string]{title, get, set}}
}

// SetPlaceholder sets the [TextField.Placeholder].
func (d *TextField) SetPlaceholder(placeholder string) *TextField {
	d.Placeholder = placeholder
	return d
}

func (d *TextField) Kind() Kinds   { return KindTextField }
func (d *TextField) isDescriptor() {}

// TextView is multiple lines of text.
type TextView struct {
	Row[string]
}

// NewTextView returns a new [TextView]. The setter may be nil.
func NewTextView(title string, get func() string, set func(string)) *TextView {
	return &TextView{Row[string]{title, get, set}}
}

func (d *TextView) Kind() Kinds   { return KindTextView }
func (d *TextView) isDescriptor() {}

// Segment is one item of a [Segmented] row, shown
// either as text or as an image.
type Segment struct {
	Text  string
	Image image.Image
}

// TextSegments returns a text [Segment] for each of the given texts.
func TextSegments(texts ...string) []Segment {
	segs := make([]Segment, len(texts))
	for i, t := range texts {
		segs[i].Text = t
	}
	return segs
}

// Segmented is a choice of one of a small group of segments. The value is
// the index of the selected segment, or -1 if none is selected.
type Segmented struct {
	Row[int]

	// Segments are the items to choose from.
	Segments []Segment
}

// NewSegmented returns a new [Segmented] with the given segments.
// The setter may be nil.
func NewSegmented(title string, segments []Segment, get func() int, set func(int)) *Segmented {
	return &Segmented{Row: Row[int]{title, get, set}, Segments: segments}
}

func (d *Segmented) Kind() Kinds   { return KindSegmented }
func (d *Segmented) isDescriptor() {}
