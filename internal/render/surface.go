/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"image/color"
	"strconv"
	"strings"
)

// Surface is the abstract immediate-mode 2D drawing API the engine renders
// onto. Backends exist for raster images, SVG and PDF (internal/export) and
// for op recording (Recorder). Colors are CSS-style strings ("#rrggbb",
// "#rgb", "rgba(r,g,b,a)") so board documents can carry them verbatim.
type Surface interface {
	// Size returns the surface dimensions in device units.
	Size() (w, h float64)
	// Clear fills the whole surface and resets any path state.
	Clear(fill string)

	// Push saves the current transform; Pop restores the last saved one.
	Push()
	Pop()
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	// SetDash sets the stroke dash pattern; no arguments resets to solid.
	SetDash(segments ...float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Circle appends a full circle subpath.
	Circle(cx, cy, r float64)
	// Rect appends a rectangle subpath.
	Rect(x, y, w, h float64)

	// StrokePath strokes the current path and discards it.
	StrokePath(stroke string, width float64)
	// FillPath fills the current path and discards it.
	FillPath(fill string)

	// DrawText renders a single line, left-aligned, with y at the top of
	// the em box.
	DrawText(text, fill string, x, y, size float64)
}

// ParseColor converts a CSS-style color string into an RGBA value.
// Supported forms: #rgb, #rrggbb, #rrggbbaa, rgb(r,g,b), rgba(r,g,b,a)
// with a in 0..1. Unparseable input yields opaque gray rather than an
// error; a bad color in one shape must not take down the frame.
func ParseColor(s string) color.RGBA {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4:len(s)-1], false)
	}
	return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
}

func parseHexColor(hex string) color.RGBA {
	c := color.RGBA{A: 0xff}
	parse := func(s string) uint8 {
		v, _ := strconv.ParseUint(s, 16, 8)
		return uint8(v)
	}
	switch len(hex) {
	case 3:
		c.R = parse(hex[0:1] + hex[0:1])
		c.G = parse(hex[1:2] + hex[1:2])
		c.B = parse(hex[2:3] + hex[2:3])
	case 6:
		c.R = parse(hex[0:2])
		c.G = parse(hex[2:4])
		c.B = parse(hex[4:6])
	case 8:
		c.R = parse(hex[0:2])
		c.G = parse(hex[2:4])
		c.B = parse(hex[4:6])
		c.A = parse(hex[6:8])
	default:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	return c
}

func parseRGBFunc(args string, hasAlpha bool) color.RGBA {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	chan8 := func(s string) uint8 {
		v, _ := strconv.Atoi(strings.TrimSpace(s))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	c := color.RGBA{R: chan8(parts[0]), G: chan8(parts[1]), B: chan8(parts[2]), A: 0xff}
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c
}
