// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/property"
)

// Registry holds the registered libraries and resolves them for elements.
// The list of libraries that apply to a class is computed the first time
// that class is resolved, and reused until more libraries are registered.
// A Registry is owned by a single context; it is not safe for concurrent use.
type Registry struct {

	// Libraries are the registered libraries, in registration order.
	Libraries []Library

	// resolved maps concrete classes to the libraries that apply to them.
	resolved map[*element.Class][]Library
}

// NewRegistry returns a new [Registry] with the given libraries registered.
func NewRegistry(libs ...Library) *Registry {
	r := &Registry{}
	r.Register(libs...)
	return r
}

// Register adds the given libraries after all of the
// libraries that are already registered.
func (r *Registry) Register(libs ...Library) {
	for _, l := range libs {
		if l == nil || l.Target() == nil {
			slog.Debug("library.Registry: ignoring library without a target class")
			continue
		}
		r.Libraries = append(r.Libraries, l)
	}
	r.resolved = nil
}

// Len returns the number of registered libraries.
func (r *Registry) Len() int {
	return len(r.Libraries)
}

// ResolveClass returns the libraries that apply to elements of the given
// class, in registration order: every library whose target is the class or
// any of its super classes. The returned slice must not be modified.
func (r *Registry) ResolveClass(class *element.Class) []Library {
	if class == nil {
		return nil
	}
	if libs, ok := r.resolved[class]; ok {
		return libs
	}
	var libs []Library
	for _, l := range r.Libraries {
		if class.Is(l.Target()) {
			libs = append(libs, l)
		}
	}
	if r.resolved == nil {
		r.resolved = map[*element.Class][]Library{}
	}
	r.resolved[class] = libs
	slog.Debug("library.Registry: resolved class", "class", class, "libraries", len(libs))
	return libs
}

// Resolve returns the libraries that apply to the given element.
// It returns nil if no library applies.
func (r *Registry) Resolve(el element.Element) []Library {
	if el == nil {
		return nil
	}
	return r.ResolveClass(el.Class())
}

// Descriptors returns the concatenated descriptors of all of the libraries
// that apply to the given element, in library registration order. Nil
// descriptors are dropped. It returns an empty list if nothing applies.
func (r *Registry) Descriptors(el element.Element) []property.Descriptor {
	res := []property.Descriptor{}
	for _, l := range r.Resolve(el) {
		res = append(res, property.Compact(l.Descriptors(el)...)...)
	}
	return res
}

// Icon returns the first non-nil icon of the libraries that apply to the
// given element that implement [Iconer], going from the libraries of the
// most derived class to those of the least derived one.
func (r *Registry) Icon(el element.Element) image.Image {
	if el == nil {
		return nil
	}
	libs := r.Resolve(el)
	for _, c := range el.Class().Chain() {
		for _, l := range libs {
			if l.Target() != c {
				continue
			}
			ic, ok := l.(Iconer)
			if !ok {
				continue
			}
			if img := ic.Icon(el); img != nil {
				return img
			}
		}
	}
	return nil
}

// Targets returns the distinct target classes of the registered
// libraries, in registration order.
func (r *Registry) Targets() []*element.Class {
	var res []*element.Class
	for _, l := range r.Libraries {
		if !slices.Contains(res, l.Target()) {
			res = append(res, l.Target())
		}
	}
	return res
}
