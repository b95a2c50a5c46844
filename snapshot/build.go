// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"log/slog"

	"cogentcore.org/inspect/element"
)

// Build walks the given live element and all of its descendants and
// returns the root [Node] of the resulting immutable tree, at depth 0.
// It returns nil if the root is not alive. It must be called on the
// context that owns the live tree, and it completes before returning.
func Build(root element.Element) *Node {
	return BuildAt(root, 0)
}

// BuildAt is like [Build], but the root node is given the given depth.
func BuildAt(root element.Element, depth int) *Node {
	return build(root, nil, depth)
}

// build makes the node for the given element and recursively its children.
// Elements that are torn down while being walked are treated as absent: a
// dead element, or one whose reads panic, yields nil and is skipped by its
// parent.
func build(el element.Element, parent *Node, depth int) (n *Node) {
	if !element.IsAlive(el) {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("snapshot.Build: skipping element that failed to read", "depth", depth, "panic", r)
			n = nil
		}
	}()
	n = &Node{
		id:          el.ID(),
		name:        el.DisplayName(),
		class:       el.Class(),
		depth:       depth,
		parent:      parent,
		system:      el.IsSystem(),
		internal:    el.IsInternal(),
		inspectable: el.CanHostInspector(),
		frame:       el.Frame(),
		element:     el,
	}
	n.accessibility, n.hasAccess = el.AccessibilityID()
	kids := el.Children()
	if len(kids) > 0 {
		n.children = make([]*Node, 0, len(kids))
	}
	for _, k := range kids {
		if kn := build(k, n, depth+1); kn != nil {
			n.children = append(n.children, kn)
		}
	}
	n.deepest = depth
	for _, kn := range n.children {
		n.deepest = max(n.deepest, kn.deepest)
	}
	return n
}
