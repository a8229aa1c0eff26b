/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package board defines the shape model of the whiteboard surface: the
// host-facing Shape record, its enumerated kinds, and the per-kind geometry
// (bounding boxes and narrow-phase hit tests).
package board

// Kind enumerates the shape variants understood by the engine. The values
// are the wire tags used in board documents; unknown tags are tolerated and
// simply never drawn or hit.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
	KindDiamond   Kind = "diamond"
	KindHexagon   Kind = "hexagon"
	KindArrow     Kind = "arrow"
	KindPath      Kind = "path"
	KindText      Kind = "text"
	KindSticky    Kind = "sticky"
	KindConnector Kind = "connector"
)

// Point is a position in world coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style defaults. TextWidthFactor is the monospace-width heuristic used for
// text bounding boxes; it is deliberately not real text metrics, so that the
// box a text shape occupies in the spatial index never depends on a font.
const (
	DefaultColor       = "#e5e7eb"
	DefaultStrokeWidth = 2.0
	DefaultFontSize    = 16.0
	TextWidthFactor    = 0.6
)

// Shape is one element of a board. Identity and geometry are owned by the
// external host; the engine only ever reads shapes. Which geometry fields
// are meaningful depends on Kind: boxes use X/Y/Width/Height, freehand
// paths use Points, connectors use FromX/FromY/ToX/ToY, text uses
// Text/FontSize in addition to its origin.
type Shape struct {
	ID   string `json:"id"`
	Kind Kind   `json:"type"`

	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Points []Point `json:"points,omitempty"`

	FromX float64 `json:"fromX,omitempty"`
	FromY float64 `json:"fromY,omitempty"`
	ToX   float64 `json:"toX,omitempty"`
	ToY   float64 `json:"toY,omitempty"`

	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`

	Color       string  `json:"color,omitempty"`
	FillColor   string  `json:"fillColor,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// StrokeColor returns the stroke color, falling back to DefaultColor.
func (s *Shape) StrokeColor() string {
	if s.Color == "" {
		return DefaultColor
	}
	return s.Color
}

// LineWidth returns the stroke width, falling back to DefaultStrokeWidth.
func (s *Shape) LineWidth() float64 {
	if s.StrokeWidth <= 0 {
		return DefaultStrokeWidth
	}
	return s.StrokeWidth
}

// TextSize returns the font size, falling back to DefaultFontSize.
func (s *Shape) TextSize() float64 {
	if s.FontSize <= 0 {
		return DefaultFontSize
	}
	return s.FontSize
}

// Bounds computes the shape's axis-aligned bounding box. ok is false when
// the box is undefined (empty freehand path, unknown kind); such shapes are
// excluded from indexing, rendering and hit testing.
func (s *Shape) Bounds() (Box, bool) {
	g := s.Geometry()
	if g == nil {
		return Box{}, false
	}
	return g.Bounds()
}
