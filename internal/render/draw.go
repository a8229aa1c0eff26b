/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"math"

	"goboard/internal/board"
)

const (
	arrowheadLength = 10.0
	arrowheadAngle  = math.Pi / 6 // 30 degrees off the line direction

	stickyFill   = "#fef08a"
	stickyBorder = "#f59e0b"
	stickyInset  = 8.0

	lockFill   = "rgba(245,158,11,0.28)"
	lockStroke = "#f59e0b"
	lockGlyph  = "\U0001F512"
	lockSize   = 16.0

	selectionPad = 4.0
)

// drawShape dispatches to the kind-specific routine. Unrecognized kinds
// draw nothing, so forward-compatible documents render instead of crashing
// older engines.
func drawShape(sur Surface, s *board.Shape) {
	switch s.Kind {
	case board.KindRectangle:
		drawRectangle(sur, s)
	case board.KindCircle:
		drawCircle(sur, s)
	case board.KindTriangle:
		drawTriangle(sur, s)
	case board.KindDiamond:
		drawDiamond(sur, s)
	case board.KindHexagon:
		drawHexagon(sur, s)
	case board.KindArrow:
		drawArrow(sur, s)
	case board.KindPath:
		drawFreehand(sur, s)
	case board.KindText:
		drawTextShape(sur, s)
	case board.KindSticky:
		drawSticky(sur, s)
	case board.KindConnector:
		drawConnector(sur, s)
	}
}

// paint fills (when fill is non-empty) and strokes the path produced by
// build. The path is rebuilt for the second pass because Fill/Stroke
// consume it.
func paint(sur Surface, fill, stroke string, width float64, build func()) {
	if fill != "" {
		sur.BeginPath()
		build()
		sur.FillPath(fill)
	}
	sur.BeginPath()
	build()
	sur.StrokePath(stroke, width)
}

func drawRectangle(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	paint(sur, s.FillColor, s.StrokeColor(), s.LineWidth(), func() {
		sur.Rect(b.Left, b.Top, b.Width(), b.Height())
	})
}

func drawCircle(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	r := math.Min(b.Width(), b.Height()) / 2
	paint(sur, s.FillColor, s.StrokeColor(), s.LineWidth(), func() {
		sur.Circle(b.CenterX(), b.CenterY(), r)
	})
}

func drawTriangle(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	paint(sur, s.FillColor, s.StrokeColor(), s.LineWidth(), func() {
		sur.MoveTo(b.CenterX(), b.Top)
		sur.LineTo(b.Right, b.Bottom)
		sur.LineTo(b.Left, b.Bottom)
		sur.ClosePath()
	})
}

func drawDiamond(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	paint(sur, s.FillColor, s.StrokeColor(), s.LineWidth(), func() {
		sur.MoveTo(b.CenterX(), b.Top)
		sur.LineTo(b.Right, b.CenterY())
		sur.LineTo(b.CenterX(), b.Bottom)
		sur.LineTo(b.Left, b.CenterY())
		sur.ClosePath()
	})
}

func drawHexagon(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	cx, cy := b.CenterX(), b.CenterY()
	r := math.Min(b.Width(), b.Height()) / 2
	paint(sur, s.FillColor, s.StrokeColor(), s.LineWidth(), func() {
		for i := 0; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			x := cx + r*math.Cos(a)
			y := cy + r*math.Sin(a)
			if i == 0 {
				sur.MoveTo(x, y)
			} else {
				sur.LineTo(x, y)
			}
		}
		sur.ClosePath()
	})
}

// drawArrow strokes the box diagonal from top-left to bottom-right with an
// arrowhead at the far end.
func drawArrow(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	sur.BeginPath()
	sur.MoveTo(b.Left, b.Top)
	sur.LineTo(b.Right, b.Bottom)
	sur.StrokePath(s.StrokeColor(), s.LineWidth())
	drawArrowhead(sur, b.Left, b.Top, b.Right, b.Bottom, s.StrokeColor(), s.LineWidth())
}

func drawFreehand(sur Surface, s *board.Shape) {
	if len(s.Points) < 2 {
		return
	}
	strokePolyline(sur, s.Points, s.StrokeColor(), s.LineWidth())
}

func drawTextShape(sur Surface, s *board.Shape) {
	sur.DrawText(s.Text, s.StrokeColor(), s.X, s.Y, s.TextSize())
}

func drawSticky(sur Surface, s *board.Shape) {
	b, _ := s.Bounds()
	fill := s.FillColor
	if fill == "" {
		fill = stickyFill
	}
	paint(sur, fill, stickyBorder, 2, func() {
		sur.Rect(b.Left, b.Top, b.Width(), b.Height())
	})
	if s.Text != "" {
		sur.DrawText(s.Text, "#1f2937", b.Left+stickyInset, b.Top+stickyInset, s.TextSize())
	}
}

func drawConnector(sur Surface, s *board.Shape) {
	sur.BeginPath()
	sur.MoveTo(s.FromX, s.FromY)
	sur.LineTo(s.ToX, s.ToY)
	sur.StrokePath(s.StrokeColor(), s.LineWidth())
	drawArrowhead(sur, s.FromX, s.FromY, s.ToX, s.ToY, s.StrokeColor(), s.LineWidth())
}

// drawArrowhead strokes the two barbs at the (tx, ty) end of a line,
// arrowheadLength long, arrowheadAngle off the line direction.
func drawArrowhead(sur Surface, fx, fy, tx, ty float64, stroke string, width float64) {
	angle := math.Atan2(ty-fy, tx-fx)
	sur.BeginPath()
	sur.MoveTo(tx, ty)
	sur.LineTo(tx-arrowheadLength*math.Cos(angle-arrowheadAngle), ty-arrowheadLength*math.Sin(angle-arrowheadAngle))
	sur.MoveTo(tx, ty)
	sur.LineTo(tx-arrowheadLength*math.Cos(angle+arrowheadAngle), ty-arrowheadLength*math.Sin(angle+arrowheadAngle))
	sur.StrokePath(stroke, width)
}

func strokePolyline(sur Surface, pts []board.Point, stroke string, width float64) {
	sur.BeginPath()
	sur.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		sur.LineTo(p.X, p.Y)
	}
	sur.StrokePath(stroke, width)
}

// drawLockOverlay paints the translucent amber veil plus a centered lock
// glyph over a locked shape.
func drawLockOverlay(sur Surface, s *board.Shape) {
	b, ok := s.Bounds()
	if !ok {
		return
	}
	sur.BeginPath()
	sur.Rect(b.Left, b.Top, b.Width(), b.Height())
	sur.FillPath(lockFill)
	sur.DrawText(lockGlyph, lockStroke, b.CenterX()-lockSize/2, b.CenterY()-lockSize/2, lockSize)
}

// drawSelectionOutline strokes a dashed box slightly outside the shape.
// Padding, dash lengths and stroke width all scale with 1/zoom so the
// outline looks the same at every zoom level.
func drawSelectionOutline(sur Surface, s *board.Shape, zoom float64) {
	b, ok := s.Bounds()
	if !ok {
		return
	}
	pad := selectionPad / zoom
	o := b.Expand(pad)
	sur.SetDash(6/zoom, 4/zoom)
	sur.BeginPath()
	sur.Rect(o.Left, o.Top, o.Width(), o.Height())
	sur.StrokePath(selectionColor, 1.5/zoom)
	sur.SetDash()
}

// drawTransients renders the per-frame UI state that is not part of the
// shape list: the in-progress freehand stroke, the connector preview and
// the selection marquee.
func drawTransients(sur Surface, o *FrameOptions, zoom float64) {
	if o.IsDrawing && len(o.DrawPath) >= 2 {
		color := o.Color
		if color == "" {
			color = board.DefaultColor
		}
		width := o.StrokeWidth
		if width <= 0 {
			width = board.DefaultStrokeWidth
		}
		strokePolyline(sur, o.DrawPath, color, width)
	}

	if o.Tool == ToolConnector && o.ConnectorStart != nil {
		color := o.Color
		if color == "" {
			color = selectionColor
		}
		sur.SetDash(8/zoom, 6/zoom)
		sur.BeginPath()
		sur.MoveTo(o.ConnectorStart.X, o.ConnectorStart.Y)
		sur.LineTo(o.Cursor.X, o.Cursor.Y)
		sur.StrokePath(color, 2/zoom)
		sur.SetDash()
	}

	if o.SelectionBox.Width > 0 && o.SelectionBox.Height > 0 {
		m := o.SelectionBox
		sur.BeginPath()
		sur.Rect(m.X, m.Y, m.Width, m.Height)
		sur.FillPath(marqueeFill)
		sur.SetDash(5/zoom, 5/zoom)
		sur.BeginPath()
		sur.Rect(m.X, m.Y, m.Width, m.Height)
		sur.StrokePath(selectionColor, 1/zoom)
		sur.SetDash()
	}
}
