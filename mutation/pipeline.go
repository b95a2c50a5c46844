// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mutation

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/inspect/property"
)

// ErrDispatchDesync is the panic value (wrapped) when an edit pairs a
// descriptor with a control of the wrong kind, or with a value of the wrong
// type. It can only come from inconsistent wiring between libraries and the
// presentation layer, so it is never recovered from.
var ErrDispatchDesync = errors.New("mutation: descriptor and control kinds do not match")

// Controls are the kinds of user interface controls that raise edits.
type Controls int32

const (
	ControlSwitch Controls = iota
	ControlStepper
	ControlColorWell
	ControlImageWell
	ControlMenu
	ControlTextField
	ControlTextView
	ControlSegments

	// ControlGeometry edits a whole [property.Composite].
	ControlGeometry

	// ControlGeometryField edits one sub-field of a geometry
	// row with a [FieldEdit] value.
	ControlGeometryField
)

var controlNames = [...]string{"Switch", "Stepper", "ColorWell", "ImageWell", "Menu", "TextField", "TextView", "Segments", "Geometry", "GeometryField"}

func (c Controls) String() string {
	if c < 0 || int(c) >= len(controlNames) {
		return fmt.Sprintf("Controls(%d)", int32(c))
	}
	return controlNames[c]
}

// FieldEdit is the value of a [ControlGeometryField] edit.
type FieldEdit struct {
	Index int
	Value float32
}

// Delegate is notified around every edit.
type Delegate interface {

	// WillUpdate is called before the descriptor's setter is called.
	WillUpdate(d property.Descriptor)

	// DidUpdate is called after the descriptor's setter has returned.
	DidUpdate(d property.Descriptor)
}

// Row is one displayed descriptor with the value that was last pulled for it.
type Row struct {
	Descriptor property.Descriptor
	Value      any
}

// Pipeline turns edits raised by the user interface into three ordered
// operations on a [Queue]: will-update, mutate, and did-update. The
// did-update operation depends on mutate, so it always sees the new value,
// and it re-pulls the value of every displayed row.
type Pipeline struct {

	// Queue is the serial queue on which the operations run.
	Queue *Queue

	// Delegate is notified around each edit. It may be nil.
	Delegate Delegate

	// Displayed are the descriptors currently shown,
	// which are refreshed after every edit.
	Displayed []property.Descriptor

	// OnRefresh is called with the re-pulled rows after every edit.
	OnRefresh func(rows []Row)
}

// NewPipeline returns a new [Pipeline] on the given queue.
func NewPipeline(q *Queue, delegate Delegate) *Pipeline {
	return &Pipeline{Queue: q, Delegate: delegate}
}

// Show sets the displayed descriptors and returns their current rows.
func (p *Pipeline) Show(ds []property.Descriptor) []Row {
	p.Displayed = ds
	return p.Rows()
}

// Rows pulls the current value of every displayed descriptor.
// Non-interactive rows have a nil value.
func (p *Pipeline) Rows() []Row {
	rows := make([]Row, len(p.Displayed))
	for i, d := range p.Displayed {
		rows[i].Descriptor = d
		if c, ok := d.(property.Control); ok {
			rows[i].Value = c.Value()
		}
	}
	return rows
}

// Refresh re-pulls every displayed row and passes them to [Pipeline.OnRefresh].
func (p *Pipeline) Refresh() []Row {
	rows := p.Rows()
	if p.OnRefresh != nil {
		p.OnRefresh(rows)
	}
	return rows
}

// Submit adds the three operations for changing the given descriptor to the
// given value from a control of the given kind, and returns the did-update
// operation. A descriptor without a setter never enters the pipeline: Submit
// adds nothing and returns nil.
func (p *Pipeline) Submit(d property.Descriptor, control Controls, value any) *Operation {
	if !property.HasHandler(d) {
		slog.Debug("mutation.Pipeline: ignoring edit of read-only row", "title", property.Title(d), "control", control)
		return nil
	}
	p.Queue.Add("will-update", func() {
		if p.Delegate != nil {
			p.Delegate.WillUpdate(d)
		}
	})
	mutate := p.Queue.Add("mutate", func() {
		Apply(d, control, value)
	})
	return p.Queue.Add("did-update", func() {
		if p.Delegate != nil {
			p.Delegate.DidUpdate(d)
		}
		p.Refresh()
	}, mutate)
}

// SubmitField is [Pipeline.Submit] for an edit of the sub-field
// with the given index of a geometry row.
func (p *Pipeline) SubmitField(g *property.Geometry, index int, value float32) *Operation {
	return p.Submit(g, ControlGeometryField, FieldEdit{Index: index, Value: value})
}

// Apply calls the setter of the given descriptor with the given value, after
// matching the descriptor kind with the control kind. It does nothing for a
// descriptor without a setter. It panics with [ErrDispatchDesync] if the
// kinds do not match or the value has the wrong type. An image row also
// takes the encoded data of an image file as a []byte, which is decoded
// with [property.DecodeImage]; data that cannot be decoded is ignored.
func Apply(d property.Descriptor, control Controls, value any) {
	if !property.HasHandler(d) {
		return
	}
	switch d := d.(type) {
	case *property.Toggle:
		if control == ControlSwitch {
			d.Set(valueAs[bool](d, control, value))
			return
		}
	case *property.Stepper:
		if control == ControlStepper {
			d.Set(d.Clamp(toFloat(d, control, value)))
			return
		}
	case *property.ColorPicker:
		if control == ControlColorWell {
			if value == nil && d.AllowsNil {
				d.Set(nil)
				return
			}
			d.Set(valueAs[color.Color](d, control, value))
			return
		}
	case *property.ImagePicker:
		if control == ControlImageWell {
			if value == nil && d.AllowsNil {
				d.Set(nil)
				return
			}
			if data, ok := value.([]byte); ok {
				img, err := property.DecodeImage(data)
				if err != nil {
					slog.Warn("mutation: ignoring image that cannot be decoded", "title", property.Title(d), "err", err)
					return
				}
				d.Set(img)
				return
			}
			d.Set(valueAs[image.Image](d, control, value))
			return
		}
	case *property.Options:
		if control == ControlMenu {
			d.Set(valueAs[int](d, control, value))
			return
		}
	case *property.TextField:
		if control == ControlTextField {
			d.Set(valueAs[string](d, control, value))
			return
		}
	case *property.TextView:
		if control == ControlTextView {
			d.Set(valueAs[string](d, control, value))
			return
		}
	case *property.Segmented:
		if control == ControlSegments {
			d.Set(valueAs[int](d, control, value))
			return
		}
	case *property.Geometry:
		switch control {
		case ControlGeometry:
			d.Set(valueAs[property.Composite](d, control, value))
			return
		case ControlGeometryField:
			fe := valueAs[FieldEdit](d, control, value)
			if err := d.SetField(fe.Index, fe.Value); err != nil {
				panic(fmt.Errorf("%w: %w", ErrDispatchDesync, err))
			}
			return
		}
	}
	panic(desync(d, control, value))
}

func desync(d property.Descriptor, control Controls, value any) error {
	return fmt.Errorf("%w: %v row %q with %v control and %T value", ErrDispatchDesync, d.Kind(), property.Title(d), control, value)
}

// valueAs returns the given value as type T, panicking with
// [ErrDispatchDesync] if it is not one.
func valueAs[T any](d property.Descriptor, control Controls, value any) T {
	v, ok := value.(T)
	if !ok {
		panic(desync(d, control, value))
	}
	return v
}

// toFloat converts a numeric stepper value to float64.
func toFloat(d property.Descriptor, control Controls, value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	panic(desync(d, control, value))
}
