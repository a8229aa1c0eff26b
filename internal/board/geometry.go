/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package board

import "math"

// Geometry is the per-kind capability surface: bounding box derivation for
// the broad phase and the narrow-phase hit test. Drawing lives in the render
// package, dispatched over the same Kind enum.
type Geometry interface {
	// Bounds returns the axis-aligned bounding box; ok is false when the
	// box cannot be computed.
	Bounds() (Box, bool)
	// Hit is the narrow-phase test for a pointer at p with the given
	// pick radius.
	Hit(p Point, radius float64) bool
}

// Geometry selects the variant implementation for the shape's kind.
// Unknown kinds return nil so forward-compatible documents never crash the
// engine; callers must treat nil as "skip".
func (s *Shape) Geometry() Geometry {
	switch s.Kind {
	case KindRectangle, KindCircle, KindTriangle, KindDiamond, KindHexagon, KindArrow, KindSticky:
		return boxGeometry{s}
	case KindPath:
		return pathGeometry{s}
	case KindText:
		return textGeometry{s}
	case KindConnector:
		return connectorGeometry{s}
	default:
		return nil
	}
}

// boxGeometry covers every variant whose extent is its x/y/width/height box.
// The hit test is plain containment against the box; the broad phase has
// already narrowed candidates to the pick region.
type boxGeometry struct{ s *Shape }

func (g boxGeometry) Bounds() (Box, bool) {
	return boxAround(g.s.X, g.s.Y, g.s.Width, g.s.Height), true
}

func (g boxGeometry) Hit(p Point, _ float64) bool {
	b, _ := g.Bounds()
	return b.Contains(p)
}

// pathGeometry is a freehand polyline. An empty path has no bounding box
// and is invisible to index, renderer and hit tester alike.
type pathGeometry struct{ s *Shape }

func (g pathGeometry) Bounds() (Box, bool) {
	pts := g.s.Points
	if len(pts) == 0 {
		return Box{}, false
	}
	b := Box{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		b.Left = math.Min(b.Left, p.X)
		b.Top = math.Min(b.Top, p.Y)
		b.Right = math.Max(b.Right, p.X)
		b.Bottom = math.Max(b.Bottom, p.Y)
	}
	return b, true
}

// Hit registers only near a recorded vertex, not along interpolated
// segments. Known limitation, kept for parity with the pick behavior the
// host UI was built against.
func (g pathGeometry) Hit(p Point, radius float64) bool {
	for _, v := range g.s.Points {
		if math.Abs(p.X-v.X) < radius && math.Abs(p.Y-v.Y) < radius {
			return true
		}
	}
	return false
}

// textGeometry sizes text with the monospace-width heuristic
// len(text) * fontSize * TextWidthFactor. Cheap and index-stable; real text
// metrics would move the shape between grid cells whenever the font
// rendering changed.
type textGeometry struct{ s *Shape }

func (g textGeometry) Bounds() (Box, bool) {
	size := g.s.TextSize()
	w := float64(len(g.s.Text)) * size * TextWidthFactor
	return Box{Left: g.s.X, Top: g.s.Y, Right: g.s.X + w, Bottom: g.s.Y + size}, true
}

func (g textGeometry) Hit(p Point, _ float64) bool {
	b, _ := g.Bounds()
	return b.Contains(p)
}

// connectorGeometry spans the segment from (FromX,FromY) to (ToX,ToY).
type connectorGeometry struct{ s *Shape }

func (g connectorGeometry) Bounds() (Box, bool) {
	return Box{
		Left:   math.Min(g.s.FromX, g.s.ToX),
		Top:    math.Min(g.s.FromY, g.s.ToY),
		Right:  math.Max(g.s.FromX, g.s.ToX),
		Bottom: math.Max(g.s.FromY, g.s.ToY),
	}, true
}

// Hit measures distance to the segment itself so a thin horizontal or
// vertical connector stays pickable despite its degenerate bounding box.
func (g connectorGeometry) Hit(p Point, radius float64) bool {
	return pointSegmentDistance(p, Point{g.s.FromX, g.s.FromY}, Point{g.s.ToX, g.s.ToY}) <= radius
}

func pointSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
