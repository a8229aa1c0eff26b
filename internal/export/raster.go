/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export provides render.Surface backends (raster, SVG, PDF) and
// file exporters so one Engine.Render call can produce any supported
// format.
package export

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"goboard/internal/render"
)

// RasterSurface draws onto an in-memory RGBA image via a gg context. Text
// uses the bundled Go Mono face, matching the monospace width heuristic the
// shape model assumes.
type RasterSurface struct {
	dc     *gg.Context
	w, h   float64
	ttf    *truetype.Font
	faces  map[int]font.Face
	scale  float64   // cumulative zoom, for text sizing
	scales []float64 // saved by Push/Pop
}

// NewRasterSurface allocates a w x h pixel surface.
func NewRasterSurface(w, h int) (*RasterSurface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster surface: invalid size %dx%d", w, h)
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return &RasterSurface{
		dc:    gg.NewContext(w, h),
		w:     float64(w),
		h:     float64(h),
		ttf:   ttf,
		faces: make(map[int]font.Face),
		scale: 1,
	}, nil
}

// Image returns the backing image.
func (r *RasterSurface) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the surface as PNG.
func (r *RasterSurface) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

func (r *RasterSurface) face(size float64) font.Face {
	// quantize to whole points so faces can be reused across frames
	pt := int(math.Round(size))
	if pt < 1 {
		pt = 1
	}
	if f, ok := r.faces[pt]; ok {
		return f
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{Size: float64(pt)})
	r.faces[pt] = f
	return f
}

func (r *RasterSurface) Size() (float64, float64) { return r.w, r.h }

func (r *RasterSurface) Clear(fill string) {
	r.dc.SetColor(render.ParseColor(fill))
	r.dc.Clear()
}

func (r *RasterSurface) Push() {
	r.dc.Push()
	r.scales = append(r.scales, r.scale)
}

func (r *RasterSurface) Pop() {
	r.dc.Pop()
	if n := len(r.scales); n > 0 {
		r.scale = r.scales[n-1]
		r.scales = r.scales[:n-1]
	}
}

func (r *RasterSurface) Translate(dx, dy float64) { r.dc.Translate(dx, dy) }

func (r *RasterSurface) Scale(sx, sy float64) {
	r.dc.Scale(sx, sy)
	r.scale *= sx
}

func (r *RasterSurface) SetDash(segments ...float64) {
	if len(segments) == 0 {
		r.dc.SetDash()
		return
	}
	r.dc.SetDash(segments...)
}

func (r *RasterSurface) BeginPath()          { r.dc.ClearPath() }
func (r *RasterSurface) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *RasterSurface) LineTo(x, y float64) { r.dc.LineTo(x, y) }
func (r *RasterSurface) ClosePath()          { r.dc.ClosePath() }

func (r *RasterSurface) Circle(cx, cy, rad float64) {
	r.dc.NewSubPath()
	r.dc.DrawCircle(cx, cy, rad)
}

func (r *RasterSurface) Rect(x, y, w, h float64) {
	r.dc.NewSubPath()
	r.dc.DrawRectangle(x, y, w, h)
}

func (r *RasterSurface) StrokePath(stroke string, width float64) {
	r.dc.SetColor(render.ParseColor(stroke))
	r.dc.SetLineWidth(width)
	r.dc.Stroke()
}

func (r *RasterSurface) FillPath(fill string) {
	r.dc.SetColor(render.ParseColor(fill))
	r.dc.Fill()
}

// DrawText renders at the device position of (x, y) with the font scaled by
// the cumulative zoom, because gg transforms glyph anchors but not glyph
// outlines.
func (r *RasterSurface) DrawText(text, fill string, x, y, size float64) {
	if text == "" {
		return
	}
	dx, dy := r.dc.TransformPoint(x, y+size*0.8)
	r.dc.Push()
	r.dc.Identity()
	r.dc.SetColor(render.ParseColor(fill))
	r.dc.SetFontFace(r.face(size * r.scale))
	r.dc.DrawString(text, dx, dy)
	r.dc.Pop()
}
