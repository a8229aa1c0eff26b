/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// SVGSurface builds an SVG document from Surface calls. Transforms become
// nested <g> groups so stroke widths scale with zoom exactly like on the
// raster backend. Colors pass through verbatim; SVG understands the same
// hex and rgba() forms the engine emits.
type SVGSurface struct {
	w, h   float64
	body   bytes.Buffer
	path   strings.Builder
	dash   []float64
	bg     string
	groups []int // open <g> count per Push level
	depth  int   // groups opened at the current level
}

// NewSVGSurface starts an empty w x h document.
func NewSVGSurface(w, h float64) *SVGSurface {
	return &SVGSurface{w: w, h: h}
}

func (s *SVGSurface) Size() (float64, float64) { return s.w, s.h }

func (s *SVGSurface) Clear(fill string) {
	s.bg = fill
	s.body.Reset()
	s.path.Reset()
	s.groups = nil
	s.depth = 0
}

func (s *SVGSurface) Push() {
	s.groups = append(s.groups, s.depth)
	s.depth = 0
}

func (s *SVGSurface) Pop() {
	for i := 0; i < s.depth; i++ {
		s.body.WriteString("</g>\n")
	}
	if n := len(s.groups); n > 0 {
		s.depth = s.groups[n-1]
		s.groups = s.groups[:n-1]
	} else {
		s.depth = 0
	}
}

func (s *SVGSurface) Translate(dx, dy float64) {
	fmt.Fprintf(&s.body, "<g transform=\"translate(%g %g)\">\n", dx, dy)
	s.depth++
}

func (s *SVGSurface) Scale(sx, sy float64) {
	fmt.Fprintf(&s.body, "<g transform=\"scale(%g %g)\">\n", sx, sy)
	s.depth++
}

func (s *SVGSurface) SetDash(segments ...float64) {
	s.dash = append(s.dash[:0], segments...)
}

func (s *SVGSurface) BeginPath() { s.path.Reset() }

func (s *SVGSurface) MoveTo(x, y float64) { fmt.Fprintf(&s.path, "M %g %g ", x, y) }
func (s *SVGSurface) LineTo(x, y float64) { fmt.Fprintf(&s.path, "L %g %g ", x, y) }
func (s *SVGSurface) ClosePath()          { s.path.WriteString("Z ") }

func (s *SVGSurface) Circle(cx, cy, r float64) {
	// full circle as two arcs; a single arc with equal endpoints collapses
	fmt.Fprintf(&s.path, "M %g %g A %g %g 0 1 1 %g %g A %g %g 0 1 1 %g %g Z ",
		cx+r, cy, r, r, cx-r, cy, r, r, cx+r, cy)
}

func (s *SVGSurface) Rect(x, y, w, h float64) {
	fmt.Fprintf(&s.path, "M %g %g L %g %g L %g %g L %g %g Z ", x, y, x+w, y, x+w, y+h, x, y+h)
}

func (s *SVGSurface) StrokePath(stroke string, width float64) {
	dash := ""
	if len(s.dash) > 0 {
		segs := make([]string, len(s.dash))
		for i, d := range s.dash {
			segs[i] = fmt.Sprintf("%g", d)
		}
		dash = fmt.Sprintf(" stroke-dasharray=\"%s\"", strings.Join(segs, " "))
	}
	fmt.Fprintf(&s.body, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\"%s/>\n",
		strings.TrimSpace(s.path.String()), stroke, width, dash)
	s.path.Reset()
}

func (s *SVGSurface) FillPath(fill string) {
	fmt.Fprintf(&s.body, "<path d=\"%s\" fill=\"%s\" stroke=\"none\"/>\n",
		strings.TrimSpace(s.path.String()), fill)
	s.path.Reset()
}

func (s *SVGSurface) DrawText(text, fill string, x, y, size float64) {
	if text == "" {
		return
	}
	fmt.Fprintf(&s.body, "<text x=\"%g\" y=\"%g\" font-family=\"monospace\" font-size=\"%g\" fill=\"%s\">%s</text>\n",
		x, y+size*0.8, size, fill, escText(text))
}

// String assembles the complete document.
func (s *SVGSurface) String() string {
	var out bytes.Buffer
	out.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&out, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n", s.w, s.h, s.w, s.h)
	if s.bg != "" {
		fmt.Fprintf(&out, "<rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n", s.w, s.h, s.bg)
	}
	out.Write(s.body.Bytes())
	// defensively close anything a caller forgot to Pop
	open := s.depth
	for _, n := range s.groups {
		open += n
	}
	for i := 0; i < open; i++ {
		out.WriteString("</g>\n")
	}
	out.WriteString("</svg>\n")
	return out.String()
}

// WriteTo writes the assembled document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func escText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '&':
			out = append(out, "&amp;"...)
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
