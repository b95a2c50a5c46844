// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspect/config"
	"cogentcore.org/inspect/element"
	"cogentcore.org/inspect/mutation"
	"cogentcore.org/inspect/property"
	"cogentcore.org/inspect/snapshot"
)

type testTree struct {
	window, title, subtitle, ok, wifi, status, cursor *element.Basic
}

func newTestTree() *testTree {
	t := &testTree{}
	t.window = element.NewBasic(element.WindowClass, "Main Window")
	t.title = element.NewBasic(element.LabelClass, "Title", t.window)
	t.subtitle = element.NewBasic(element.LabelClass, "Subtitle", t.window)
	t.ok = element.NewBasic(element.ButtonClass, "OK", t.window)
	t.wifi = element.NewBasic(element.SwitchClass, "Wi-Fi", t.ok)
	t.status = element.NewBasic(element.ViewClass, "Status Bar", t.window)
	t.status.SetSystem(true)
	t.cursor = element.NewBasic(element.ViewClass, "Cursor", t.window)
	t.cursor.SetInternal(true)
	return t
}

type recorder struct {
	events []string
}

func (r *recorder) WillUpdate(d property.Descriptor) {
	r.events = append(r.events, "will "+property.Title(d))
}

func (r *recorder) DidUpdate(d property.Descriptor) {
	r.events = append(r.events, "did "+property.Title(d))
}

func names(nodes []*snapshot.Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.Name()
	}
	return res
}

func started(t *testing.T, h *Host, cfg *config.Config) *Context {
	t.Helper()
	c := New(h, cfg)
	require.NoError(t, c.Start())
	return c
}

func rowOf[T property.Descriptor](t *testing.T, rows []mutation.Row, title string) T {
	t.Helper()
	for _, r := range rows {
		if v, ok := r.Descriptor.(T); ok && property.Title(r.Descriptor) == title {
			return v
		}
	}
	require.Failf(t, "missing row", "no row titled %q", title)
	return *new(T)
}

func TestLifecycle(t *testing.T) {
	tt := newTestTree()
	c := New(&Host{Root: tt.window}, nil)
	assert.False(t, c.IsActive())

	_, err := c.Snapshot()
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.ErrorIs(t, c.Finish(), ErrNotStarted)
	_, err = c.Select(nil)
	assert.ErrorIs(t, err, ErrNotStarted)

	require.NoError(t, c.Start())
	require.NoError(t, c.Start())
	assert.True(t, c.IsActive())
	s, err := c.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, s)

	require.NoError(t, c.Finish())
	assert.False(t, c.IsActive())
	_, err = c.Snapshot()
	assert.ErrorIs(t, err, ErrFinished)
	_, err = c.Edit(nil, mutation.ControlSwitch, true)
	assert.ErrorIs(t, err, ErrFinished)
	assert.ErrorIs(t, c.Finish(), ErrFinished)
	assert.ErrorIs(t, c.Start(), ErrFinished)
}

func TestSnapshotCached(t *testing.T) {
	tt := newTestTree()
	c := started(t, &Host{Root: tt.window}, nil)
	s1, err := c.Snapshot()
	require.NoError(t, err)
	s2, err := c.Snapshot()
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	c.Invalidate()
	s3, err := c.Snapshot()
	require.NoError(t, err)
	assert.NotSame(t, s1, s3)

	tt.ok.Remove()
	s4, err := c.Snapshot()
	require.NoError(t, err)
	assert.Same(t, s3, s4, "the cached snapshot is valid until it expires")
	assert.NotNil(t, s4.NodeByID(tt.wifi.ID()))
	c.Invalidate()
	s5, err := c.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, s5.NodeByID(tt.ok.ID()))
	assert.Nil(t, s5.NodeByID(tt.wifi.ID()))

	tt.window.Remove()
	c.Invalidate()
	s6, err := c.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, s6)
}

func TestDefaultLayer(t *testing.T) {
	tt := newTestTree()
	c := started(t, &Host{Root: tt.window}, nil)
	nodes, err := c.Filter("all")
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Window", "Title", "Subtitle", "OK", "Wi-Fi"}, names(nodes))

	cfg := config.Default()
	cfg.ShowSystemElements = true
	cfg.ShowInternal = true
	c.ApplyConfig(cfg)
	nodes, err = c.Filter("all")
	require.NoError(t, err)
	assert.Equal(t, []string{"Main Window", "Title", "Subtitle", "OK", "Wi-Fi", "Status Bar", "Cursor"}, names(nodes))

	nodes, err = c.Filter("missing")
	require.NoError(t, err)
	assert.Nil(t, nodes)
}

func TestHostLayers(t *testing.T) {
	tt := newTestTree()
	h := &Host{
		Root: tt.window,
		Layers: []snapshot.Layer{
			snapshot.LayerByClass("labels", element.LabelClass),
			snapshot.LayerByClass("images", element.ImageClass),
			snapshot.LayerByClass("controls", element.ControlClass),
		},
	}
	c := started(t, h, nil)
	layers, err := c.Layers()
	require.NoError(t, err)
	require.Len(t, layers, 2)
	assert.Equal(t, "labels", layers[0].Name)
	assert.Equal(t, "controls", layers[1].Name)

	labels, err := c.Filter("labels")
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Subtitle"}, names(labels))

	controls, err := c.Filter("controls")
	require.NoError(t, err)
	assert.Equal(t, []string{"OK", "Wi-Fi"}, names(controls))
}

func TestEdit(t *testing.T) {
	tt := newTestTree()
	rec := &recorder{}
	c := started(t, &Host{Root: tt.window, Delegate: rec}, nil)
	nodes, err := c.Nodes()
	require.NoError(t, err)
	wifi := nodes[4]
	require.Equal(t, "Wi-Fi", wifi.Name())

	rows, err := c.Select(wifi)
	require.NoError(t, err)
	assert.Same(t, wifi, c.Selected)
	on := rowOf[*property.Toggle](t, rows, "On")

	var refreshed []mutation.Row
	c.Pipeline.OnRefresh = func(rows []mutation.Row) { refreshed = rows }

	s1, _ := c.Snapshot()
	op, err := c.Edit(on, mutation.ControlSwitch, true)
	require.NoError(t, err)
	require.NotNil(t, op)
	assert.Equal(t, mutation.Finished, op.State())
	assert.True(t, tt.wifi.IsOn())
	assert.Equal(t, []string{"will On", "did On"}, rec.events)
	assert.Equal(t, true, rowOf[*property.Toggle](t, refreshed, "On").Value())
	for _, r := range refreshed {
		if r.Descriptor == property.Descriptor(on) {
			assert.Equal(t, true, r.Value)
		}
	}

	s2, _ := c.Snapshot()
	assert.NotSame(t, s1, s2, "an edit invalidates the snapshot")

	frame := rowOf[*property.Geometry](t, rows, "Frame")
	_, err = c.EditField(frame, 3, 44)
	require.NoError(t, err)
	assert.Equal(t, math32.B2(0, 0, 0, 44), tt.wifi.Frame())
}

func TestEditReadOnly(t *testing.T) {
	tt := newTestTree()
	rec := &recorder{}
	c := started(t, &Host{Root: tt.window, Delegate: rec}, nil)
	d := property.NewToggle("Locked", func() bool { return false }, nil)
	op, err := c.Edit(d, mutation.ControlSwitch, true)
	require.NoError(t, err)
	assert.Nil(t, op)
	assert.Empty(t, rec.events)
	assert.Zero(t, c.Queue.Len())
}

func TestSearch(t *testing.T) {
	tt := newTestTree()
	c := started(t, &Host{Root: tt.window}, nil)

	res, err := c.Search("titel", 0)
	require.NoError(t, err)
	require.NotEmpty(t, res)
	assert.Equal(t, "Title", res[0].Node.Name())

	res, err = c.Search("title", 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Title", res[0].Node.Name())
	assert.Equal(t, 1.0, res[0].Score)
	assert.Equal(t, "Subtitle", res[1].Node.Name())

	res, err = c.Search("label", 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Title", res[0].Node.Name())

	res, err = c.Search("  ", 0)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestColorIcon(t *testing.T) {
	tt := newTestTree()
	logo := image.NewRGBA(image.Rect(0, 0, 2, 2))
	override := image.NewRGBA(image.Rect(0, 0, 1, 1))
	im := element.NewBasic(element.ImageClass, "Logo", tt.window)
	im.SetImage(logo)
	h := &Host{
		Root: tt.window,
		ColorScheme: func(el element.Element) color.Color {
			if el.Class().Is(element.LabelClass) {
				return color.Black
			}
			return nil
		},
	}
	c := started(t, h, nil)
	nodes, err := c.Nodes()
	require.NoError(t, err)
	byName := map[string]*snapshot.Node{}
	for _, n := range nodes {
		byName[n.Name()] = n
	}

	assert.Equal(t, color.Color(DepthPalette[0]), c.Color(byName["Main Window"]))
	assert.Equal(t, color.Color(color.Black), c.Color(byName["Title"]))
	assert.Equal(t, color.Color(DepthPalette[2]), c.Color(byName["Wi-Fi"]))

	assert.Equal(t, image.Image(logo), c.Icon(byName["Logo"]))
	assert.Nil(t, c.Icon(byName["OK"]))
	h.IconOverride = func(el element.Element) image.Image {
		if el.DisplayName() == "OK" {
			return override
		}
		return nil
	}
	assert.Equal(t, image.Image(override), c.Icon(byName["OK"]))
	assert.Equal(t, image.Image(logo), c.Icon(byName["Logo"]))
}

func TestApplyConfig(t *testing.T) {
	tt := newTestTree()
	c := started(t, &Host{Root: tt.window}, nil)
	cfg := config.Default()
	cfg.Cache.Enabled = false
	require.NoError(t, cfg.Platform.SetString("ios/13.0"))
	c.ApplyConfig(cfg)

	s1, _ := c.Snapshot()
	s2, _ := c.Snapshot()
	assert.NotSame(t, s1, s2)

	rows, err := c.Select(s1.NodeByID(tt.title.ID()))
	require.NoError(t, err)
	assert.Len(t, rowOf[*property.Segmented](t, rows, "Alignment").Segments, 3)

	cfg.Platform.Version = "15.0.0"
	c.ApplyConfig(cfg)
	rows = c.Pipeline.Rows()
	assert.Len(t, rowOf[*property.Segmented](t, rows, "Alignment").Segments, 4)
	cfg.Cache.Enabled = true
	assert.False(t, c.Config.Cache.Enabled, "the context keeps its own copy")
}

// redrawer lists the tree again every time an edit finishes,
// the way a host redraws its outline.
type redrawer struct {
	c      *Context
	redraw [][]string
	layers [][]string
}

func (r *redrawer) WillUpdate(d property.Descriptor) {}

func (r *redrawer) DidUpdate(d property.Descriptor) {
	nodes, err := r.c.Nodes()
	if err == nil {
		r.redraw = append(r.redraw, names(nodes))
	}
}

func TestSnapshotDuringEdit(t *testing.T) {
	tt := newTestTree()
	rd := &redrawer{}
	c := started(t, &Host{Root: tt.window, Delegate: rd}, nil)
	rd.c = c
	c.Pipeline.OnRefresh = func(rows []mutation.Row) {
		nodes, err := c.Filter("all")
		if err == nil {
			rd.layers = append(rd.layers, names(nodes))
		}
	}
	s, err := c.Snapshot()
	require.NoError(t, err)
	rows, err := c.Select(s.NodeByID(tt.title.ID()))
	require.NoError(t, err)
	name := rowOf[*property.TextField](t, rows, "Name")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err = c.Edit(name, mutation.ControlTextField, "Heading")
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("edit did not finish")
	}
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Main Window", "Heading", "Subtitle", "OK", "Wi-Fi", "Status Bar"}}, rd.redraw)
	assert.Equal(t, [][]string{{"Main Window", "Heading", "Subtitle", "OK", "Wi-Fi"}}, rd.layers)
	assert.Nil(t, c.Queue.Running())
	assert.Zero(t, c.Queue.Len())
}

func TestWatch(t *testing.T) {
	tt := newTestTree()
	c := started(t, &Host{Root: tt.window}, nil)
	path := filepath.Join(t.TempDir(), "inspect.toml")
	require.NoError(t, config.Save(config.Default(), path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- c.Watch(ctx, path)
	}()

	cfg := config.Default()
	cfg.Cache.TTL = config.Duration(time.Minute)
	deadline := time.After(10 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for c.Cache.TTL != time.Minute {
		select {
		case <-tick.C:
			// the watcher may not be registered yet, so keep writing
			require.NoError(t, config.Save(cfg, path))
			c.Queue.Run()
		case <-deadline:
			t.Fatal("config was not applied")
		}
	}
	assert.Equal(t, config.Duration(time.Minute), c.Config.Cache.TTL)
	cancel()
	require.NoError(t, <-done)
}
