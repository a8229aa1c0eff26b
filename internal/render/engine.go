/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render owns the board frame pipeline: viewport computation,
// spatial-index culling, per-kind draw dispatch, transient overlays, and
// the topmost-first hit tester. It draws onto an abstract Surface so the
// same engine serves raster, SVG and PDF backends.
package render

import (
	"errors"
	"log/slog"
	"math"

	"goboard/internal/board"
	applog "goboard/internal/log"
	"goboard/internal/spatial"
)

// ErrNoSurface is returned by NewEngine when no drawing surface is given.
// This is the only fatal misconfiguration; everything else degrades to
// skipping the offending shape.
var ErrNoSurface = errors.New("render: drawing surface is required")

const (
	// ViewportPadding expands the culling query on all sides so shapes
	// partially visible at the viewport edge are never dropped early.
	ViewportPadding = 100.0

	// DefaultHitRadius is the pick tolerance in world units.
	DefaultHitRadius = 10.0

	// DefaultGridSize is the grid line spacing in world units.
	DefaultGridSize = 20.0

	// DefaultBackground is the board background when the host passes none.
	DefaultBackground = "#1a1a2e"

	defaultGridColor = "#2a2a3e"
	selectionColor   = "#3b82f6"
	marqueeFill      = "rgba(59,130,246,0.1)"
)

// Tool identifies the host's active tool; the engine only cares about the
// connector tool, whose preview line it draws.
type Tool string

// ToolConnector enables the dashed connector preview during Render.
const ToolConnector Tool = "connector"

// Marquee is the rectangular selection box overlay. It is active only when
// both dimensions are positive, so the zero value draws nothing.
type Marquee struct {
	X, Y          float64
	Width, Height float64
}

// FrameOptions is the per-frame state bundle supplied by the host. Zero
// values fall back to documented defaults: Zoom 1, GridSize 20,
// DefaultBackground, grid visible (HideGrid false).
type FrameOptions struct {
	Zoom       float64
	Pan        board.Point
	Background string

	Selected    string              // single-selection id
	SelectedSet map[string]struct{} // multi-selection ids
	Locked      map[string]struct{} // locked ids; lock wins over selection

	DrawPath    []board.Point // in-progress freehand stroke
	IsDrawing   bool
	Color       string  // active tool color
	StrokeWidth float64 // active tool stroke width

	SelectionBox   Marquee
	ConnectorStart *board.Point
	Cursor         board.Point
	Tool           Tool

	GridSize  float64
	GridColor string
	HideGrid  bool
}

func (o *FrameOptions) isSelected(id string) bool {
	if id == o.Selected {
		return true
	}
	_, ok := o.SelectedSet[id]
	return ok
}

// HitOptions tunes Engine.HitTest.
type HitOptions struct {
	Radius        float64 // pick radius; <= 0 selects DefaultHitRadius
	ExcludeLocked bool
	Locked        map[string]struct{}
}

// Options configures a new Engine.
type Options struct {
	CellSize float64 // spatial index cell edge; <= 0 selects the default
	Logger   *slog.Logger
}

// Engine renders board frames and answers hit tests. It owns the spatial
// index and a snapshot of the host's ordered shape list (order is z-order:
// later shapes draw on top). Single-threaded by design; the host serializes
// calls on its render thread.
type Engine struct {
	surface   Surface
	grid      *spatial.Grid
	shapes    []*board.Shape
	byID      map[string]int
	log       *slog.Logger
	destroyed bool
}

// NewEngine wires a drawing surface to a fresh engine. A nil surface is a
// configuration error: rendering would be impossible, so fail fast.
func NewEngine(surface Surface, opts Options) (*Engine, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	l := opts.Logger
	if l == nil {
		l = applog.WithComponent("render")
	}
	return &Engine{
		surface: surface,
		grid:    spatial.NewGrid(opts.CellSize),
		byID:    make(map[string]int),
		log:     l,
	}, nil
}

// UpdateShapes replaces the engine's view of the board and rebuilds the
// spatial index. This is the sole bulk entry point; hosts with single-shape
// edits can use UpdateShape instead of paying the full rebuild.
func (e *Engine) UpdateShapes(shapes []*board.Shape) {
	if e.destroyed {
		return
	}
	e.shapes = append(e.shapes[:0:0], shapes...)
	e.byID = make(map[string]int, len(e.shapes))
	for i, s := range e.shapes {
		e.byID[s.ID] = i
	}
	e.grid.Rebuild(e.shapes)
	e.log.Debug("shapes updated", slog.Int("count", len(e.shapes)))
}

// UpdateShape applies a single-shape edit incrementally: the index entry is
// re-derived and the list slot patched in place, preserving z-order. A
// shape with an unknown id is appended on top.
func (e *Engine) UpdateShape(s *board.Shape) {
	if e.destroyed || s == nil {
		return
	}
	if i, ok := e.byID[s.ID]; ok {
		e.shapes[i] = s
	} else {
		e.byID[s.ID] = len(e.shapes)
		e.shapes = append(e.shapes, s)
	}
	e.grid.Update(s)
}

// RemoveShape drops a shape from the list and the index.
func (e *Engine) RemoveShape(id string) {
	if e.destroyed {
		return
	}
	i, ok := e.byID[id]
	if !ok {
		return
	}
	e.shapes = append(e.shapes[:i], e.shapes[i+1:]...)
	delete(e.byID, id)
	for j := i; j < len(e.shapes); j++ {
		e.byID[e.shapes[j].ID] = j
	}
	e.grid.Remove(id)
}

// Destroy releases index and list state. Subsequent calls are no-ops.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.grid.Clear()
	e.shapes = nil
	e.byID = nil
}

// viewport inverts the pan/zoom transform over the surface dimensions:
// the world-space rectangle currently on screen.
func viewport(pan board.Point, zoom, w, h float64) board.Box {
	left := -pan.X / zoom
	top := -pan.Y / zoom
	return board.Box{Left: left, Top: top, Right: left + w/zoom, Bottom: top + h/zoom}
}

// visible filters the ordered shape list down to the index candidates for
// the region, preserving z-order.
func (e *Engine) visible(region board.Box) []*board.Shape {
	candidates := e.grid.Query(region)
	out := make([]*board.Shape, 0, len(candidates))
	for _, s := range e.shapes {
		if _, ok := candidates[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Render draws one complete frame. It never fails: malformed shapes and
// unknown kinds are skipped so a single bad record cannot blank the board.
func (e *Engine) Render(o FrameOptions) {
	if e.destroyed {
		return
	}
	zoom := o.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	bg := o.Background
	if bg == "" {
		bg = DefaultBackground
	}
	gridSize := o.GridSize
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	gridColor := o.GridColor
	if gridColor == "" {
		gridColor = defaultGridColor
	}

	sur := e.surface
	w, h := sur.Size()
	sur.Clear(bg)
	sur.Push()
	sur.Translate(o.Pan.X, o.Pan.Y)
	sur.Scale(zoom, zoom)

	vp := viewport(o.Pan, zoom, w, h)
	if !o.HideGrid {
		drawGrid(sur, vp, gridSize, gridColor, zoom)
	}

	vis := e.visible(vp.Expand(ViewportPadding))
	for _, s := range vis {
		drawShape(sur, s)
		if _, locked := o.Locked[s.ID]; locked {
			drawLockOverlay(sur, s)
		} else if o.isSelected(s.ID) {
			drawSelectionOutline(sur, s, zoom)
		}
	}

	drawTransients(sur, &o, zoom)
	sur.Pop()

	e.log.Debug("frame",
		slog.Int("visible", len(vis)),
		slog.Int("total", len(e.shapes)),
		slog.Float64("zoom", zoom))
}

// HitTest returns the topmost shape at (x, y), or nil. Candidates come from
// the spatial index; the supplied list provides both membership and z-order
// (last element is topmost).
func (e *Engine) HitTest(x, y float64, shapes []*board.Shape, o HitOptions) *board.Shape {
	if e.destroyed {
		return nil
	}
	radius := o.Radius
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	region := board.Box{Left: x - radius, Top: y - radius, Right: x + radius, Bottom: y + radius}
	candidates := e.grid.Query(region)
	p := board.Point{X: x, Y: y}

	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		if _, ok := candidates[s.ID]; !ok {
			continue
		}
		if o.ExcludeLocked {
			if _, locked := o.Locked[s.ID]; locked {
				continue
			}
		}
		g := s.Geometry()
		if g == nil {
			continue
		}
		if g.Hit(p, radius) {
			return s
		}
	}
	return nil
}

// drawGrid strokes grid lines quantized to multiples of size so they stay
// put while the board pans underneath.
func drawGrid(sur Surface, vp board.Box, size float64, color string, zoom float64) {
	startX := math.Floor(vp.Left/size) * size
	endX := math.Ceil(vp.Right/size) * size
	startY := math.Floor(vp.Top/size) * size
	endY := math.Ceil(vp.Bottom/size) * size

	sur.BeginPath()
	for x := startX; x <= endX; x += size {
		sur.MoveTo(x, startY)
		sur.LineTo(x, endY)
	}
	for y := startY; y <= endY; y += size {
		sur.MoveTo(startX, y)
		sur.LineTo(endX, y)
	}
	sur.StrokePath(color, 1/zoom)
}
