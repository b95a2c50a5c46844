// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"time"

	"github.com/google/uuid"

	"cogentcore.org/inspect/element"
)

// Snapshot is a complete, time-bounded capture of a live element tree,
// along with the layers that are available for it and which of those
// layers have any elements. A Snapshot is never modified after it is made.
type Snapshot struct {

	// ID uniquely identifies this capture.
	ID uuid.UUID

	// Root is the root of the captured tree. It is nil if the
	// live root was not alive when the snapshot was built.
	Root *Node

	// Inspectable is the pre-order list of all of the nodes
	// under Root (including Root) that can host the inspector.
	Inspectable []*Node

	// Available are the layers of the snapshot, deduplicated
	// by name with the first registered layer winning.
	Available []Layer

	// Populated are the available layers that contain
	// at least one node, in the order of Available.
	Populated []Layer

	// Created is the time at which the snapshot was built.
	Created time.Time

	// Expiry is the time after which the snapshot should be rebuilt.
	Expiry time.Time

	// byID indexes the inspectable nodes by element identity.
	byID map[element.ID]*Node
}

// New builds the tree for the given live root and returns a new [Snapshot]
// of it with the given layers, created at the given time and expiring after
// the given time to live.
func New(root element.Element, layers []Layer, now time.Time, ttl time.Duration) *Snapshot {
	return FromNode(Build(root), layers, now, ttl)
}

// FromNode returns a new [Snapshot] of an already built tree.
// The populated layers are computed now, once; they are not updated if
// the live tree changes afterward.
func FromNode(root *Node, layers []Layer, now time.Time, ttl time.Duration) *Snapshot {
	s := &Snapshot{
		ID:        uuid.New(),
		Root:      root,
		Available: uniqueLayers(layers),
		Created:   now,
		Expiry:    now.Add(ttl),
		byID:      map[element.ID]*Node{},
	}
	if root != nil {
		root.WalkDown(func(k *Node) bool {
			if k.inspectable {
				s.Inspectable = append(s.Inspectable, k)
				s.byID[k.id] = k
			}
			return Continue
		})
	}
	for _, l := range s.Available {
		if s.populates(l) {
			s.Populated = append(s.Populated, l)
		}
	}
	return s
}

// populates returns whether the given layer keeps any inspectable node.
func (s *Snapshot) populates(l Layer) bool {
	for _, n := range s.Inspectable {
		if l.Matches(n) {
			return true
		}
	}
	return false
}

// Expired returns whether the snapshot is past its expiry at the given time.
// An expired snapshot is still valid to use; it only signals that the next
// lookup should rebuild it.
func (s *Snapshot) Expired(now time.Time) bool {
	return now.After(s.Expiry)
}

// Layer returns the available layer with the given name, and whether it exists.
func (s *Snapshot) Layer(name string) (Layer, bool) {
	for _, l := range s.Available {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// IsPopulated returns whether the layer with the given name
// is available and contains at least one node.
func (s *Snapshot) IsPopulated(name string) bool {
	for _, l := range s.Populated {
		if l.Name == name {
			return true
		}
	}
	return false
}

// NodeByID returns the inspectable node for the element with
// the given identity, or nil if there is none.
func (s *Snapshot) NodeByID(id element.ID) *Node {
	return s.byID[id]
}

// Len returns the number of inspectable nodes.
func (s *Snapshot) Len() int {
	return len(s.Inspectable)
}
