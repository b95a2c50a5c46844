// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot captures a live element tree as an immutable tree of
// reference [Node]s, filters it through named [Layer]s, and caches one
// [Snapshot] per root element.
package snapshot

import (
	"strings"

	"cogentcore.org/core/math32"

	"cogentcore.org/inspect/element"
)

// Node is an immutable reference to one live element, holding the facts
// that were read from it when the snapshot was built, plus facts derived
// from its position in the tree. A Node owns its children; its parent and
// element links are non-owning references used only for navigation.
//
// Nodes are only made by [Build] and [BuildAt], and nothing in a Node
// changes after it is built. To reflect a change in the live tree, build
// a new snapshot.
type Node struct {
	id            element.ID
	name          string
	class         *element.Class
	depth         int
	deepest       int
	parent        *Node
	children      []*Node
	system        bool
	internal      bool
	inspectable   bool
	frame         math32.Box2
	accessibility string
	hasAccess     bool
	element       element.Element
}

// ID returns the identity of the live element.
func (n *Node) ID() element.ID { return n.id }

// Name returns the display name of the element at build time.
func (n *Node) Name() string { return n.name }

// Class returns the capability class of the element.
func (n *Node) Class() *element.Class { return n.class }

// Depth returns the depth of the node, which is 0 for a root built
// with [Build] and one more than the depth of its parent otherwise.
func (n *Node) Depth() int { return n.depth }

// DeepestAbsoluteLevel returns the largest depth of any node in the
// subtree rooted at this node, including the node itself.
func (n *Node) DeepestAbsoluteLevel() int { return n.deepest }

// DeepestRelativeLevel returns the number of levels below this node
// in its deepest branch.
func (n *Node) DeepestRelativeLevel() int { return n.deepest - n.depth }

// Parent returns the parent of the node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the children of the node. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// HasChildren returns whether the node has any children.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// NumChildren returns the number of children of the node.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the child at the given index, or nil if it is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IsRoot returns whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

func (n *Node) IsSystem() bool         { return n.system }
func (n *Node) IsInternal() bool       { return n.internal }
func (n *Node) CanHostInspector() bool { return n.inspectable }

// Frame returns the geometry of the element at build time.
func (n *Node) Frame() math32.Box2 { return n.frame }

// AccessibilityID returns the accessibility identifier of the element
// at build time, and whether it had one.
func (n *Node) AccessibilityID() (string, bool) { return n.accessibility, n.hasAccess }

// Element returns the live element that the node was built from.
// The element may have changed or been torn down since.
func (n *Node) Element() element.Element { return n.element }

// IndexInParent returns the index of the node in its parent's
// children, or -1 for the root.
func (n *Node) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	for i, k := range n.parent.children {
		if k == n {
			return i
		}
	}
	return -1
}

// Path returns the path from the root to the node, using the node
// names separated by / delimiters.
func (n *Node) Path() string {
	var names []string
	n.WalkUp(func(k *Node) bool {
		names = append(names, strings.ReplaceAll(k.name, "/", `\\`))
		return Continue
	})
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

const (
	// Continue = true can be returned from walk functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from walk functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its descendants
// in pre-order. It stops walking the current branch if the function
// returns [Break].
func (n *Node) WalkDown(fun func(k *Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.children {
		k.WalkDown(fun)
	}
}

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break], and returns whether
// walking was finished.
func (n *Node) WalkUp(fun func(k *Node) bool) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}
