// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Class is a capability tag for a kind of element. A class can have any
// number of super classes, and an element of a class is considered to be
// an element of every class in its [Class.Chain]. Classes are immutable
// after [NewClass] returns.
type Class struct {

	// Name is the kebab-case name of the class (eg: text-field).
	Name string

	// Supers are the direct super classes of this class.
	Supers []*Class

	// chain is the compiled list of this class and all of its supers.
	chain []*Class
}

// NewClass returns a new [Class] with the given name and direct super classes,
// compiling its full ancestry chain.
func NewClass(name string, supers ...*Class) *Class {
	c := &Class{Name: name, Supers: supers}
	c.compileChain()
	return c
}

// compileChain collects the class and all of its super classes breadth
// first, visiting each class only once.
func (c *Class) compileChain() {
	seen := map[*Class]bool{c: true}
	c.chain = []*Class{c}
	for i := 0; i < len(c.chain); i++ {
		for _, s := range c.chain[i].Supers {
			if s == nil || seen[s] {
				continue
			}
			seen[s] = true
			c.chain = append(c.chain, s)
		}
	}
}

// Chain returns the class followed by all of its super classes, from most
// to least derived. The returned slice must not be modified.
func (c *Class) Chain() []*Class {
	if c == nil {
		return nil
	}
	return c.chain
}

// Is returns whether the class is the given class or has it
// anywhere in its ancestry.
func (c *Class) Is(other *Class) bool {
	for _, k := range c.Chain() {
		if k == other {
			return true
		}
	}
	return false
}

func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

// Label returns a friendly title-cased version of the class name
// (eg: text-field => Text Field).
func (c *Class) Label() string {
	if c == nil {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(c.Name, "-", " "))
}

// The standard classes, which built-in libraries target.
// Hosts can define their own classes with these as supers.
var (
	ElementClass   = NewClass("element")
	ViewClass      = NewClass("view", ElementClass)
	WindowClass    = NewClass("window", ViewClass)
	ControlClass   = NewClass("control", ViewClass)
	LabelClass     = NewClass("label", ViewClass)
	ImageClass     = NewClass("image", ViewClass)
	ButtonClass    = NewClass("button", ControlClass)
	SwitchClass    = NewClass("switch", ControlClass)
	SliderClass    = NewClass("slider", ControlClass)
	TextFieldClass = NewClass("text-field", ControlClass)
)
