// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"log/slog"
	"strings"

	"cogentcore.org/core/base/keylist"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cogentcore.org/inspect/element"
)

// Layer is a named filter over the elements of a snapshot, such as
// "all labels". Layers are plain values, and two layers with the
// same name are considered to be the same layer.
type Layer struct {

	// Name is the unique name of the layer.
	Name string

	// Filter returns whether the given element belongs to the layer.
	// A nil Filter matches no elements.
	Filter func(el element.Element) bool

	// ShowLabels is whether the presentation layer should label the
	// elements of this layer when it is shown.
	ShowLabels bool

	// AllowsSystemViews is whether elements that belong to the host
	// toolkit are kept by this layer.
	AllowsSystemViews bool
}

// Title returns a friendly title-cased version of the layer name.
func (l Layer) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(l.Name, "-", " "))
}

// Matches returns whether the given node belongs to the layer: the layer
// filter accepts its element, and it is not a system element unless the
// layer allows them.
func (l Layer) Matches(n *Node) bool {
	if l.Filter == nil || n == nil {
		return false
	}
	if n.system && !l.AllowsSystemViews {
		return false
	}
	return l.Filter(n.element)
}

// LayerByClass returns a [Layer] with the given name that contains the
// elements of the given class, including its subclasses.
func LayerByClass(name string, class *element.Class) Layer {
	return Layer{
		Name: name,
		Filter: func(el element.Element) bool {
			return el.Class().Is(class)
		},
		ShowLabels: true,
	}
}

// LayerAll is a layer that contains every inspectable element,
// including system elements.
var LayerAll = Layer{
	Name:              "all",
	Filter:            func(el element.Element) bool { return true },
	AllowsSystemViews: true,
}

// uniqueLayers returns the given layers without any layer whose name was
// already used by an earlier layer, keeping the registration order.
func uniqueLayers(layers []Layer) []Layer {
	kl := keylist.New[string, Layer]()
	for _, l := range layers {
		if err := kl.Add(l.Name, l); err != nil {
			slog.Debug("snapshot: ignoring duplicate layer", "name", l.Name)
		}
	}
	return kl.Values
}
