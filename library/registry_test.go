// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/property"
)

func header(title string) func(el element.Element) []property.Descriptor {
	return func(el element.Element) []property.Descriptor {
		return []property.Descriptor{property.NewGroupHeader(title)}
	}
}

func titles(ds []property.Descriptor) []string {
	res := make([]string, len(ds))
	for i, d := range ds {
		res[i] = property.Title(d)
	}
	return res
}

func TestCapabilityUnion(t *testing.T) {
	a := element.NewClass("a")
	b := element.NewClass("b")
	e := element.NewClass("e", a, b)
	other := element.NewClass("other")

	r := NewRegistry(New(b, header("B")), New(other, header("Other")), New(a, header("A")))
	el := element.NewBasic(e, "e")

	libs := r.Resolve(el)
	require.Len(t, libs, 2)
	assert.Equal(t, b, libs[0].Target())
	assert.Equal(t, a, libs[1].Target())
	assert.Equal(t, []string{"B", "A"}, titles(r.Descriptors(el)))

	only := element.NewBasic(a, "a")
	assert.Equal(t, []string{"A"}, titles(r.Descriptors(only)))
}

func TestDescriptorsEmpty(t *testing.T) {
	r := NewRegistry(New(element.LabelClass, header("Label")))
	ds := r.Descriptors(element.NewBasic(element.ButtonClass, "b"))
	assert.NotNil(t, ds)
	assert.Empty(t, ds)
	assert.Nil(t, r.Resolve(nil))
	assert.Nil(t, r.ResolveClass(nil))
}

func TestDescriptorsDropNil(t *testing.T) {
	r := NewRegistry(
		New(element.ViewClass, func(el element.Element) []property.Descriptor {
			return []property.Descriptor{nil, property.NewGroupHeader("View"), nil}
		}),
		New(element.ElementClass, func(el element.Element) []property.Descriptor { return nil }),
		&Func{Class: element.ElementClass},
	)
	assert.Equal(t, []string{"View"}, titles(r.Descriptors(element.NewBasic(element.ViewClass, "v"))))
}

func TestResolveMemo(t *testing.T) {
	r := NewRegistry(New(element.ViewClass, header("View")))
	first := r.ResolveClass(element.ButtonClass)
	require.Len(t, first, 1)
	assert.Len(t, r.resolved, 1)
	assert.Equal(t, first, r.ResolveClass(element.ButtonClass))

	r.Register(New(element.ControlClass, header("Control")), nil, New(nil, header("None")))
	assert.Nil(t, r.resolved)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"View", "Control"}, titles(r.Descriptors(element.NewBasic(element.ButtonClass, "b"))))
	assert.Equal(t, []*element.Class{element.ViewClass, element.ControlClass}, r.Targets())
}

func TestIcon(t *testing.T) {
	viewIcon := image.NewRGBA(image.Rect(0, 0, 1, 1))
	buttonIcon := image.NewRGBA(image.Rect(0, 0, 2, 2))
	r := NewRegistry(
		New(element.ViewClass, header("View")).SetIcon(func(el element.Element) image.Image { return viewIcon }),
		New(element.ButtonClass, header("Button")).SetIcon(func(el element.Element) image.Image {
			if el.DisplayName() == "plain" {
				return nil
			}
			return buttonIcon
		}),
		New(element.ControlClass, header("Control")),
	)
	assert.Equal(t, image.Image(buttonIcon), r.Icon(element.NewBasic(element.ButtonClass, "ok")))
	assert.Equal(t, image.Image(viewIcon), r.Icon(element.NewBasic(element.ButtonClass, "plain")))
	assert.Equal(t, image.Image(viewIcon), r.Icon(element.NewBasic(element.LabelClass, "label")))
	assert.Nil(t, r.Icon(nil))
	assert.Nil(t, NewRegistry().Icon(element.NewBasic(element.LabelClass, "label")))
}
