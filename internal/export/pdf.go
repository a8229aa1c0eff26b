/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"goboard/internal/render"
)

// bezierCircleK approximates a quarter circle with a cubic Bezier.
const bezierCircleK = 0.5523

// PDFSurface draws onto a single-page PDF in point units. Built-in
// Helvetica keeps text vector without embedding. Transforms map onto the
// PDF content-stream matrix, so stroke widths scale with zoom like on the
// other backends.
type PDFSurface struct {
	pdf   *gofpdf.Fpdf
	w, h  float64
	depth int
	alpha float64
}

// NewPDFSurface allocates a w x h point page.
func NewPDFSurface(w, h float64) (*PDFSurface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("pdf surface: invalid size %gx%g", w, h)
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
		OrientationStr: "",
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: w, Ht: h})
	return &PDFSurface{pdf: pdf, w: w, h: h, alpha: 1}, nil
}

// Output writes the finished document. Any open transform blocks are
// closed first so gofpdf does not flag the page as unbalanced.
func (p *PDFSurface) Output(w io.Writer) error {
	for p.depth > 0 {
		p.pdf.TransformEnd()
		p.depth--
	}
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (p *PDFSurface) Size() (float64, float64) { return p.w, p.h }

func (p *PDFSurface) Clear(fill string) {
	p.setFill(fill)
	p.pdf.Rect(0, 0, p.w, p.h, "F")
}

func (p *PDFSurface) Push() {
	p.pdf.TransformBegin()
	p.depth++
}

func (p *PDFSurface) Pop() {
	if p.depth == 0 {
		return
	}
	p.pdf.TransformEnd()
	p.depth--
}

func (p *PDFSurface) Translate(dx, dy float64) { p.pdf.TransformTranslate(dx, dy) }

func (p *PDFSurface) Scale(sx, sy float64) {
	// gofpdf scales in percent around an anchor point
	p.pdf.TransformScale(sx*100, sy*100, 0, 0)
}

func (p *PDFSurface) SetDash(segments ...float64) {
	p.pdf.SetDashPattern(segments, 0)
}

func (p *PDFSurface) BeginPath() {}

func (p *PDFSurface) MoveTo(x, y float64) { p.pdf.MoveTo(x, y) }
func (p *PDFSurface) LineTo(x, y float64) { p.pdf.LineTo(x, y) }
func (p *PDFSurface) ClosePath()          { p.pdf.ClosePath() }

func (p *PDFSurface) Circle(cx, cy, r float64) {
	k := r * bezierCircleK
	p.pdf.MoveTo(cx+r, cy)
	p.pdf.CurveBezierCubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.pdf.CurveBezierCubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.pdf.CurveBezierCubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.pdf.CurveBezierCubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.pdf.ClosePath()
}

func (p *PDFSurface) Rect(x, y, w, h float64) {
	p.pdf.MoveTo(x, y)
	p.pdf.LineTo(x+w, y)
	p.pdf.LineTo(x+w, y+h)
	p.pdf.LineTo(x, y+h)
	p.pdf.ClosePath()
}

func (p *PDFSurface) StrokePath(stroke string, width float64) {
	c := render.ParseColor(stroke)
	p.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.setAlpha(c.A)
	p.pdf.SetLineWidth(width)
	p.pdf.DrawPath("D")
}

func (p *PDFSurface) FillPath(fill string) {
	p.setFill(fill)
	p.pdf.DrawPath("F")
}

func (p *PDFSurface) DrawText(text, fill string, x, y, size float64) {
	if text == "" {
		return
	}
	c := render.ParseColor(fill)
	p.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	p.setAlpha(c.A)
	p.pdf.SetFontUnitSize(size)
	p.pdf.Text(x, y+size*0.8, text)
}

func (p *PDFSurface) setFill(fill string) {
	c := render.ParseColor(fill)
	p.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	p.setAlpha(c.A)
}

func (p *PDFSurface) setAlpha(a uint8) {
	want := float64(a) / 255
	if want != p.alpha {
		p.pdf.SetAlpha(want, "Normal")
		p.alpha = want
	}
}
