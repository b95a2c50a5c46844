// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides iterative walking functions over snapshot nodes in
pre-order, for piecemeal navigation such as moving the selection to the
next or previous element.
*/

package snapshot

// Last returns the last node in pre-order in the subtree of the given node.
func Last(n *Node) *Node {
	for n.HasChildren() {
		n = n.Child(n.NumChildren() - 1)
	}
	return n
}

// Previous returns the previous node in pre-order,
// or nil if this is the root node.
func Previous(n *Node) *Node {
	if n.parent == nil {
		return nil
	}
	idx := n.IndexInParent()
	if idx > 0 {
		return Last(n.parent.Child(idx - 1))
	}
	return n.parent
}

// Next returns the next node in pre-order,
// or nil if this is the last node.
func Next(n *Node) *Node {
	if n.HasChildren() {
		return n.Child(0)
	}
	return NextSibling(n)
}

// NextSibling returns the next sibling of this node, or of its nearest
// ancestor that has one, or nil if there is none.
func NextSibling(n *Node) *Node {
	for cur := n; cur.parent != nil; cur = cur.parent {
		idx := cur.IndexInParent()
		if idx >= 0 && idx < cur.parent.NumChildren()-1 {
			return cur.parent.Child(idx + 1)
		}
	}
	return nil
}

// NextWhere returns the next node in pre-order after n for which the
// given function returns true, or nil if there is none.
func NextWhere(n *Node, fun func(k *Node) bool) *Node {
	for cur := Next(n); cur != nil; cur = Next(cur) {
		if fun(cur) {
			return cur
		}
	}
	return nil
}

// PreviousWhere returns the previous node in pre-order before n for which
// the given function returns true, or nil if there is none.
func PreviousWhere(n *Node, fun func(k *Node) bool) *Node {
	for cur := Previous(n); cur != nil; cur = Previous(cur) {
		if fun(cur) {
			return cur
		}
	}
	return nil
}
