// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"reflect"
	"sync"

	"cogentcore.org/core/base/strcase"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Framer is an optional interface that [tree.Node]s can implement
// to report their geometry to [FromNode].
type Framer interface {
	Frame() math32.Box2
}

// Classifier is an optional interface that [tree.Node]s can implement
// to report their classification to [FromNode]. Nodes that do not
// implement it are treated as inspectable application elements.
type Classifier interface {
	IsSystem() bool
	IsInternal() bool
	CanHostInspector() bool
}

// nodeElement adapts a [tree.Node] to the [Element] interface.
type nodeElement struct {
	tree.Node
}

// FromNode returns an [Element] that reads the given Cogent Core tree node.
// The [Class] of the element is derived from the Go type of the node, with
// the classes of its embedded node types as supers, so that a library
// targeting the class of an embedded type applies to every type that embeds it.
func FromNode(n tree.Node) Element {
	if n == nil {
		return nil
	}
	return nodeElement{n}
}

func (ne nodeElement) ID() ID {
	return ID(reflect.ValueOf(ne.Node.AsTree()).Pointer())
}

func (ne nodeElement) DisplayName() string {
	return ne.Node.AsTree().Name
}

func (ne nodeElement) Class() *Class {
	return ClassOf(reflect.TypeOf(ne.Node))
}

func (ne nodeElement) Children() []Element {
	kids := ne.Node.AsTree().Children
	els := make([]Element, 0, len(kids))
	for _, k := range kids {
		if k == nil {
			continue
		}
		els = append(els, nodeElement{k})
	}
	return els
}

func (ne nodeElement) Frame() math32.Box2 {
	if fr, ok := ne.Node.(Framer); ok {
		return fr.Frame()
	}
	return math32.Box2{}
}

func (ne nodeElement) IsSystem() bool {
	if cl, ok := ne.Node.(Classifier); ok {
		return cl.IsSystem()
	}
	return false
}

func (ne nodeElement) IsInternal() bool {
	if cl, ok := ne.Node.(Classifier); ok {
		return cl.IsInternal()
	}
	return false
}

func (ne nodeElement) CanHostInspector() bool {
	if cl, ok := ne.Node.(Classifier); ok {
		return cl.CanHostInspector()
	}
	return true
}

func (ne nodeElement) AccessibilityID() (string, bool) {
	return "", false
}

// Alive returns false once the node has been deleted from its tree,
// which sets its This field to nil.
func (ne nodeElement) Alive() bool {
	return ne.Node.AsTree().This != nil
}

// Unwrap returns the underlying tree node of an element made with [FromNode],
// or nil if it was not made that way.
func Unwrap(el Element) tree.Node {
	if ne, ok := el.(nodeElement); ok {
		return ne.Node
	}
	return nil
}

var (
	nodeClassesMu sync.Mutex
	nodeClasses   = map[reflect.Type]*Class{}
)

// ClassOf returns the [Class] for the given Go type, making and caching it
// the first time. Pointer types are reduced to their element type.
// The supers of the class are the classes of the embedded struct fields.
func ClassOf(typ reflect.Type) *Class {
	nodeClassesMu.Lock()
	defer nodeClassesMu.Unlock()
	return classOf(typ)
}

func classOf(typ reflect.Type) *Class {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if c, ok := nodeClasses[typ]; ok {
		return c
	}
	var supers []*Class
	if typ.Kind() == reflect.Struct {
		for i := range typ.NumField() {
			f := typ.Field(i)
			if !f.Anonymous {
				continue
			}
			ft := f.Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() != reflect.Struct {
				continue
			}
			supers = append(supers, classOf(ft))
		}
	}
	if len(supers) == 0 {
		supers = []*Class{ElementClass}
	}
	c := NewClass(strcase.ToKebab(typ.Name()), supers...)
	nodeClasses[typ] = c
	return c
}
