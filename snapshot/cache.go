// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"log/slog"
	"time"

	"cogentcore.org/inspect/element"
)

// DefaultTTL is the default time to live of a cached [Snapshot].
const DefaultTTL = 5 * time.Second

// Cache keeps at most one [Snapshot] per root element identity, and
// rebuilds it when it expires. A Cache is owned by the single context
// that owns the live tree; it is not safe for concurrent use.
type Cache struct {

	// Layers are the layers given to every snapshot that is built.
	Layers []Layer

	// TTL is how long a built snapshot is returned unchanged.
	TTL time.Duration

	// Enabled is whether snapshots are cached at all. If it is false,
	// every lookup builds a new snapshot.
	Enabled bool

	// Now returns the current time. It defaults to [time.Now].
	Now func() time.Time

	entries map[element.ID]*Snapshot
}

// NewCache returns a new enabled [Cache] for the given layers
// with the given time to live.
func NewCache(layers []Layer, ttl time.Duration) *Cache {
	return &Cache{
		Layers:  layers,
		TTL:     ttl,
		Enabled: true,
		Now:     time.Now,
		entries: map[element.ID]*Snapshot{},
	}
}

func (c *Cache) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// SnapshotFor returns the snapshot for the given live root. If there is
// a cached snapshot for the root that has not expired, it is returned
// unchanged; otherwise a new one is built and cached. It returns nil if
// the root is not alive.
func (c *Cache) SnapshotFor(root element.Element) *Snapshot {
	if !element.IsAlive(root) {
		return nil
	}
	id := root.ID()
	now := c.now()
	if c.Enabled {
		if s, ok := c.entries[id]; ok && !s.Expired(now) {
			return s
		}
	}
	s := New(root, c.Layers, now, c.TTL)
	slog.Debug("snapshot.Cache: built snapshot", "root", id, "snapshot", s.ID, "nodes", s.Len(), "populated", len(s.Populated))
	if !c.Enabled {
		return s
	}
	if c.entries == nil {
		c.entries = map[element.ID]*Snapshot{}
	}
	c.entries[id] = s
	return s
}

// Peek returns the cached snapshot for the given root identity
// without building one, whether or not it has expired.
func (c *Cache) Peek(id element.ID) *Snapshot {
	return c.entries[id]
}

// Invalidate removes the cached snapshot for the given root identity,
// so that the next lookup builds a new one.
func (c *Cache) Invalidate(id element.ID) {
	delete(c.entries, id)
}

// InvalidateAll removes all cached snapshots.
func (c *Cache) InvalidateAll() {
	clear(c.entries)
}

// SetTTL sets the time to live for snapshots built from now on.
// Cached snapshots keep the expiry they were built with.
func (c *Cache) SetTTL(ttl time.Duration) {
	c.TTL = ttl
}

// SetEnabled sets whether snapshots are cached,
// dropping all cached snapshots when disabled.
func (c *Cache) SetEnabled(enabled bool) {
	c.Enabled = enabled
	if !enabled {
		c.InvalidateAll()
	}
}
