// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspector provides the [Context] through which a host application
// inspects and edits its live element tree: snapshots with layers, property
// rows for a selected element, edits through the mutation pipeline, and
// name search.
package inspector

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/inspect/base/logx"
	"cogentcore.org/inspect/config"
	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/libraries"
	"cogentcore.org/inspect/library"
	"cogentcore.org/inspect/mutation"
	"cogentcore.org/inspect/property"
	"cogentcore.org/inspect/snapshot"
)

var (
	// ErrNotStarted is returned when a [Context] is used before [Context.Start].
	ErrNotStarted = errors.New("inspector: context is not started")

	// ErrFinished is returned when a [Context] is used after [Context.Finish].
	ErrFinished = errors.New("inspector: context is finished")
)

// Context is one inspector session over the live tree of a [Host].
// It is owned by the context that owns the live tree, and all of its
// methods must be called from there, except for [Context.Watch].
// Work from other goroutines goes through [Context.Queue].
type Context struct {

	// Host is the host application.
	Host *Host

	// Config is the current configuration.
	Config *config.Config

	// Queue is the serial queue of the context that owns the live tree.
	Queue *mutation.Queue

	// Cache caches the snapshot of the root.
	Cache *snapshot.Cache

	// Registry holds the built-in and host libraries.
	Registry *library.Registry

	// Pipeline applies edits of the selected rows.
	Pipeline *mutation.Pipeline

	// Selected is the currently selected node, if any.
	Selected *snapshot.Node

	started  bool
	finished bool
}

// New returns a new [Context] for the given host with the given config,
// which may be nil to use [config.Default]. The context must be started
// with [Context.Start] before it can be used.
func New(host *Host, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &Context{Host: host, Config: cfg.Clone(), Queue: mutation.NewQueue()}
	c.Cache = snapshot.NewCache(c.layers(), time.Duration(c.Config.Cache.TTL))
	c.Cache.SetEnabled(c.Config.Cache.Enabled)
	c.Registry = c.registry()
	c.Pipeline = mutation.NewPipeline(c.Queue, c)
	return c
}

// layers returns the host layers, or the default layer if there are none.
func (c *Context) layers() []snapshot.Layer {
	if len(c.Host.Layers) > 0 {
		return c.Host.Layers
	}
	all := snapshot.LayerAll
	all.AllowsSystemViews = c.Config.ShowSystemElements
	return []snapshot.Layer{all}
}

func (c *Context) registry() *library.Registry {
	r := library.NewRegistry(libraries.Builtins(c.Config.Platform.SemVer())...)
	r.Register(c.Host.Libraries...)
	return r
}

// Start starts the context. Starting a started context does nothing.
func (c *Context) Start() error {
	if c.finished {
		return ErrFinished
	}
	if c.started {
		return nil
	}
	c.started = true
	slog.Info("inspector: started", "libraries", c.Registry.Len(), "layers", len(c.Cache.Layers))
	return nil
}

// Finish finishes the context, cancelling any pending edits and
// dropping the cached snapshot. A finished context cannot be used again.
func (c *Context) Finish() error {
	if err := c.check(); err != nil {
		return err
	}
	c.Queue.CancelAll()
	c.Cache.InvalidateAll()
	c.Pipeline.Displayed = nil
	c.Selected = nil
	c.finished = true
	slog.Info("inspector: finished")
	return nil
}

// IsActive returns whether the context has been started and not finished.
func (c *Context) IsActive() bool {
	return c.check() == nil
}

func (c *Context) check() error {
	if c.finished {
		return ErrFinished
	}
	if !c.started {
		return ErrNotStarted
	}
	return nil
}

// Snapshot returns the snapshot of the live tree, which is cached until
// it expires or is invalidated. It is built on the queue of the context,
// after any edits that are already pending. It returns nil if the root is
// no longer alive, or if the queue is suspended. Called from inside an
// operation, such as [mutation.Delegate.DidUpdate] or the refresh hook of
// the pipeline, it builds right away, as the queue is already running.
func (c *Context) Snapshot() (*snapshot.Snapshot, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if c.Queue.Running() != nil {
		return c.Cache.SnapshotFor(c.Host.Root), nil
	}
	var s *snapshot.Snapshot
	c.Queue.Sync("snapshot", func() {
		s = c.Cache.SnapshotFor(c.Host.Root)
	})
	return s, nil
}

// visible returns the given nodes without internal ones,
// unless the config shows them.
func (c *Context) visible(nodes []*snapshot.Node) []*snapshot.Node {
	if c.Config.ShowInternal {
		return nodes
	}
	res := make([]*snapshot.Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsInternal() {
			res = append(res, n)
		}
	}
	return res
}

// Nodes returns the inspectable nodes of the current snapshot, in pre-order.
func (c *Context) Nodes() ([]*snapshot.Node, error) {
	s, err := c.Snapshot()
	if s == nil {
		return nil, err
	}
	return c.visible(s.Inspectable), nil
}

// Layers returns the layers of the current snapshot
// that have at least one element.
func (c *Context) Layers() ([]snapshot.Layer, error) {
	s, err := c.Snapshot()
	if s == nil {
		return nil, err
	}
	return s.Populated, nil
}

// Filter returns the nodes of the current snapshot in the layer
// with the given name, in pre-order. It returns nil for an unknown layer.
func (c *Context) Filter(layer string) ([]*snapshot.Node, error) {
	s, err := c.Snapshot()
	if s == nil {
		return nil, err
	}
	l, ok := s.Layer(layer)
	if !ok {
		slog.Debug("inspector: unknown layer", "layer", layer)
		return nil, nil
	}
	return c.visible(snapshot.Filter(s, l)), nil
}

// Descriptors returns the property descriptors of the element of the given
// node, or nil if the element is no longer alive.
func (c *Context) Descriptors(n *snapshot.Node) []property.Descriptor {
	if n == nil || !element.IsAlive(n.Element()) {
		return nil
	}
	return c.Registry.Descriptors(n.Element())
}

// Select selects the given node and returns the current rows of its
// element, which are refreshed after every edit.
func (c *Context) Select(n *snapshot.Node) ([]mutation.Row, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	c.Selected = n
	return c.Pipeline.Show(c.Descriptors(n)), nil
}

// Edit changes the given descriptor to the given value from a control of
// the given kind, and runs the queue. It returns the did-update operation,
// or nil if the descriptor is read-only. The operation is still pending
// if the queue is suspended.
func (c *Context) Edit(d property.Descriptor, control mutation.Controls, value any) (*mutation.Operation, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	op := c.Pipeline.Submit(d, control, value)
	if op != nil {
		c.Queue.Run()
	}
	return op, nil
}

// EditField is [Context.Edit] for one sub-field of a geometry row.
func (c *Context) EditField(g *property.Geometry, index int, value float32) (*mutation.Operation, error) {
	return c.Edit(g, mutation.ControlGeometryField, mutation.FieldEdit{Index: index, Value: value})
}

// Invalidate drops the cached snapshot, so that the
// next one reflects the current live tree.
func (c *Context) Invalidate() {
	if c.Host.Root != nil {
		c.Cache.Invalidate(c.Host.Root.ID())
	}
}

// WillUpdate implements [mutation.Delegate].
func (c *Context) WillUpdate(d property.Descriptor) {
	if c.Host.Delegate != nil {
		c.Host.Delegate.WillUpdate(d)
	}
}

// DidUpdate implements [mutation.Delegate]. It also
// invalidates the snapshot, which may be stale now.
func (c *Context) DidUpdate(d property.Descriptor) {
	c.Invalidate()
	if c.Host.Delegate != nil {
		c.Host.Delegate.DidUpdate(d)
	}
}

// Color returns the outline color of the given node: the color from
// [Host.ColorScheme] if it gives one, and otherwise the color of
// [DepthPalette] for the depth of the node.
func (c *Context) Color(n *snapshot.Node) color.Color {
	if c.Host.ColorScheme != nil && n.Element() != nil {
		if clr := c.Host.ColorScheme(n.Element()); clr != nil {
			return clr
		}
	}
	return DepthPalette[n.Depth()%len(DepthPalette)]
}

// Icon returns the icon of the given node: the icon from
// [Host.IconOverride] if it gives one, and otherwise the
// icon from the libraries, which may be nil.
func (c *Context) Icon(n *snapshot.Node) image.Image {
	el := n.Element()
	if el == nil {
		return nil
	}
	if c.Host.IconOverride != nil {
		if img := c.Host.IconOverride(el); img != nil {
			return img
		}
	}
	return c.Registry.Icon(el)
}

// ApplyConfig applies the given config: the cache settings, the log level,
// and the platform and visibility settings, which reset the cache and
// the libraries.
func (c *Context) ApplyConfig(cfg *config.Config) {
	c.Config = cfg.Clone()
	logx.UserLevel = c.Config.Level()
	c.Cache.Layers = c.layers()
	c.Cache.SetTTL(time.Duration(c.Config.Cache.TTL))
	c.Cache.SetEnabled(c.Config.Cache.Enabled)
	c.Cache.InvalidateAll()
	c.Registry = c.registry()
	if c.Selected != nil {
		c.Pipeline.Show(c.Descriptors(c.Selected))
	}
	slog.Debug("inspector: applied config", "platform", c.Config.Platform, "ttl", c.Config.Cache.TTL)
}

// Watch applies the config in the given file every time it changes, until
// the given context is done. The config is applied by an operation on
// [Context.Queue], so it takes effect at the next snapshot or edit. Watch
// blocks, and it is the one method that can be called from any goroutine.
func (c *Context) Watch(ctx context.Context, path string) error {
	return config.Watch(ctx, path, func(cfg *config.Config) {
		c.Queue.Add("apply-config", func() { c.ApplyConfig(cfg) })
	})
}
