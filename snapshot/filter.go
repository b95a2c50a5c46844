// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"cogentcore.org/core/base/keylist"
)

// Filter returns the inspectable nodes of the given snapshot that belong to
// the given layer, in pre-order. A node belongs to the layer if the layer
// filter accepts its element and, unless the layer allows system views, it
// is not a system element.
func Filter(s *Snapshot, l Layer) []*Node {
	if s == nil {
		return nil
	}
	var res []*Node
	for _, n := range s.Inspectable {
		if l.Matches(n) {
			res = append(res, n)
		}
	}
	return res
}

// FilterAll returns the filtered nodes of every populated layer of the
// given snapshot, keyed by layer name in the order of the layers.
func FilterAll(s *Snapshot) *keylist.List[string, []*Node] {
	kl := keylist.New[string, []*Node]()
	if s == nil {
		return kl
	}
	for _, l := range s.Populated {
		kl.Add(l.Name, Filter(s, l))
	}
	return kl
}
