// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package libraries provides the built-in libraries for the standard
// element classes. Each library looks for optional capabilities on the
// element and only contributes rows for the ones that it has.
package libraries

import (
	"image"

	"cogentcore.org/core/math32"
	"github.com/Masterminds/semver/v3"

	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/library"
	"cogentcore.org/inspect/property"
)

// JustifiedSince is the platform version constraint
// for justified text alignment.
const JustifiedSince = ">= 14.0"

// Builtins returns the built-in libraries, from the least derived class to
// the most derived one, for a host on the given platform version, which
// may be nil if it is unknown.
func Builtins(platform *semver.Version) []library.Library {
	return []library.Library{
		Element(),
		View(),
		Control(),
		Switch(),
		Slider(),
		Label(platform),
		TextField(),
		Image(),
	}
}

// Element returns the library for [element.ElementClass], which applies
// to every element.
func Element() *library.Func {
	return library.New(element.ElementClass, func(el element.Element) []property.Descriptor {
		name := property.NewTextField("Name", el.DisplayName, nil)
		switch n := el.(type) {
		case Namer:
			name.Set = n.SetName
		default:
			if tn := element.Unwrap(el); tn != nil {
				name.Set = func(v string) { tn.AsTree().SetName(v) }
			}
		}
		var frame *property.Geometry
		if fs, ok := el.(FrameSetter); ok {
			frame = property.NewRect("Frame", el.Frame, fs.SetFrame)
		} else {
			frame = property.NewRect("Frame", el.Frame, nil)
		}
		ds := []property.Descriptor{
			property.NewGroupHeader(el.Class().Label()).SetSubtitle(el.DisplayName()),
			name,
		}
		if id, ok := el.AccessibilityID(); ok {
			ds = append(ds, property.NewTextView("Accessibility ID", func() string { return id }, nil))
		}
		ds = append(ds, frame)
		if h, ok := el.(Hider); ok {
			ds = append(ds, property.NewToggle("Hidden", h.IsHidden, h.SetHidden))
		}
		if f, ok := el.(Fader); ok {
			ds = append(ds, property.NewStepper("Alpha", f.Alpha, f.SetAlpha).SetRange(0, 1).SetStep(0.05))
		}
		return ds
	})
}

// View returns the library for [element.ViewClass].
func View() *library.Func {
	return library.New(element.ViewClass, func(el element.Element) []property.Descriptor {
		var ds []property.Descriptor
		if b, ok := el.(Backgrounder); ok {
			ds = append(ds, property.NewColorPicker("Background", b.Background, b.SetBackground))
		}
		if p, ok := el.(Padder); ok {
			ds = append(ds, property.NewGeometry("Padding", property.GeometryInsets,
				func() property.Composite {
					in := p.Padding()
					return property.Composite{in.Top, in.Left, in.Bottom, in.Right}
				},
				func(c property.Composite) {
					p.SetPadding(element.Insets{Top: c[0], Left: c[1], Bottom: c[2], Right: c[3]})
				}))
		}
		if len(ds) == 0 {
			return nil
		}
		return append([]property.Descriptor{property.NewSeparator(), property.NewGroupHeader("View")}, ds...)
	})
}

// Control returns the library for [element.ControlClass].
func Control() *library.Func {
	return library.New(element.ControlClass, func(el element.Element) []property.Descriptor {
		e, ok := el.(Enabler)
		if !ok {
			return nil
		}
		return []property.Descriptor{
			property.NewGroupHeader("Control"),
			property.NewToggle("Enabled", e.IsEnabled, e.SetEnabled),
		}
	})
}

// Switch returns the library for [element.SwitchClass].
func Switch() *library.Func {
	return library.New(element.SwitchClass, func(el element.Element) []property.Descriptor {
		s, ok := el.(Switcher)
		if !ok {
			return nil
		}
		return []property.Descriptor{property.NewToggle("On", s.IsOn, s.SetOn)}
	})
}

// Slider returns the library for [element.SliderClass].
func Slider() *library.Func {
	return library.New(element.SliderClass, func(el element.Element) []property.Descriptor {
		v, ok := el.(Valuer)
		if !ok {
			return nil
		}
		return []property.Descriptor{
			property.NewStepper("Value", v.Value, v.SetValue).SetRange(0, 1).SetStep(0.01),
		}
	})
}

// Label returns the library for [element.LabelClass] on the given platform
// version. Justified alignment is only offered if the platform satisfies
// [JustifiedSince].
func Label(platform *semver.Version) *library.Func {
	justified := property.Since(JustifiedSince, platform)
	return library.New(element.LabelClass, func(el element.Element) []property.Descriptor {
		ds := []property.Descriptor{property.NewGroupHeader("Label")}
		if t, ok := el.(Texter); ok {
			ds = append(ds, property.NewTextView("Text", t.Text, t.SetText))
		}
		if a, ok := el.(Aligner); ok {
			aligns := Alignments
			if !justified {
				aligns = aligns[:len(aligns)-1]
			}
			ds = append(ds, property.NewSegmented("Alignment", property.TextSegments(aligns...), a.Alignment, a.SetAlignment))
		}
		if l, ok := el.(Liner); ok {
			ds = append(ds, property.NewStepper("Lines", l.Lines, l.SetLines).SetRange(0, 100))
		}
		if len(ds) == 1 {
			return nil
		}
		return ds
	})
}

// TextField returns the library for [element.TextFieldClass].
func TextField() *library.Func {
	return library.New(element.TextFieldClass, func(el element.Element) []property.Descriptor {
		var ds []property.Descriptor
		if t, ok := el.(Texter); ok {
			text := property.NewTextField("Text", t.Text, t.SetText)
			if p, ok := el.(Placeholderer); ok {
				text.SetPlaceholder(p.Placeholder())
				ds = append(ds, text, property.NewTextField("Placeholder", p.Placeholder, p.SetPlaceholder))
			} else {
				ds = append(ds, text)
			}
		}
		if k, ok := el.(Keyboarder); ok {
			ds = append(ds, property.NewOptions("Keyboard", Keyboards, k.Keyboard, k.SetKeyboard).SetEmptyTitle("Default"))
		}
		return ds
	})
}

// Image returns the library for [element.ImageClass]. It also provides
// the image of an element as its icon.
func Image() *library.Func {
	return library.New(element.ImageClass, func(el element.Element) []property.Descriptor {
		im, ok := el.(Imager)
		if !ok {
			return nil
		}
		return []property.Descriptor{
			property.NewGroupHeader("Image"),
			property.NewImagePicker("Image", im.Image, im.SetImage),
			property.NewVector("Size", property.GeometrySize, func() math32.Vector2 {
				img := im.Image()
				if img == nil {
					return math32.Vector2{}
				}
				sz := img.Bounds().Size()
				return math32.Vec2(float32(sz.X), float32(sz.Y))
			}, nil),
		}
	}).SetIcon(func(el element.Element) image.Image {
		if im, ok := el.(Imager); ok {
			return im.Image()
		}
		return nil
	})
}
