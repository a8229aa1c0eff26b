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
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goboard/internal/board"
	"goboard/internal/render"
)

func sampleShapes() []*board.Shape {
	return []*board.Shape{
		{ID: "r1", Kind: board.KindRectangle, X: 40, Y: 40, Width: 200, Height: 120, FillColor: "#3b82f6"},
		{ID: "c1", Kind: board.KindCircle, X: 300, Y: 60, Width: 100, Height: 100},
		{ID: "t1", Kind: board.KindText, X: 60, Y: 200, Text: "hello", FontSize: 24},
	}
}

func TestExportBoardPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "board.png")
	err := ExportBoardPNG(sampleShapes(), out, Options{
		Width: 320, Height: 240,
		Frame: render.FrameOptions{HideGrid: true},
	})
	if err != nil {
		t.Fatalf("ExportBoardPNG: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
	// corner pixel shows the default background
	r, g, bl, _ := img.At(b.Max.X-1, b.Max.Y-1).RGBA()
	if uint8(r>>8) != 0x1a || uint8(g>>8) != 0x1a || uint8(bl>>8) != 0x2e {
		t.Fatalf("background pixel = %x %x %x", r>>8, g>>8, bl>>8)
	}
}

func TestExportBoardSVGContent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "board.svg")
	err := ExportBoardSVG(sampleShapes(), out, Options{
		Width: 800, Height: 600,
		Frame: render.FrameOptions{HideGrid: true},
	})
	if err != nil {
		t.Fatalf("ExportBoardSVG: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(data)
	for _, want := range []string{
		"<svg xmlns=\"http://www.w3.org/2000/svg\"",
		"viewBox=\"0 0 800 600\"",
		"fill=\"#1a1a2e\"",            // background rect
		"fill=\"#3b82f6\"",            // filled rectangle
		"<text x=\"60\" y=\"219.2\"",  // 200 + 24*0.8
		">hello</text>",
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Fatalf("svg missing %q:\n%s", want, svg)
		}
	}
	// every opened group is closed again
	if strings.Count(svg, "<g ") != strings.Count(svg, "</g>") {
		t.Fatalf("unbalanced groups")
	}
}

func TestExportBoardPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "board.pdf")
	err := ExportBoardPDF(sampleShapes(), out, Options{Width: 1280, Height: 720})
	if err != nil {
		t.Fatalf("ExportBoardPDF: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestExportBoardDispatchByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.svg", "c.pdf"} {
		out := filepath.Join(dir, name)
		if err := ExportBoard(sampleShapes(), out, Options{Width: 100, Height: 100}); err != nil {
			t.Fatalf("ExportBoard(%s): %v", name, err)
		}
		if st, err := os.Stat(out); err != nil || st.Size() == 0 {
			t.Fatalf("empty or missing output %s", name)
		}
	}
	if err := ExportBoard(nil, filepath.Join(dir, "d.bmp"), Options{}); err == nil {
		t.Fatalf("unknown extension must error")
	}
}

func TestSVGSurfaceEscapesText(t *testing.T) {
	s := NewSVGSurface(100, 100)
	s.DrawText("a<b & c>d", "#fff", 0, 0, 10)
	if !strings.Contains(s.String(), ">a&lt;b &amp; c&gt;d</text>") {
		t.Fatalf("text not escaped: %s", s.String())
	}
}

func TestSVGSurfaceDashAppliesToStrokeOnly(t *testing.T) {
	s := NewSVGSurface(100, 100)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 10)
	s.SetDash(4, 2)
	s.StrokePath("#fff", 1)
	out := s.String()
	if !strings.Contains(out, "stroke-dasharray=\"4 2\"") {
		t.Fatalf("dasharray missing: %s", out)
	}
	s.SetDash()
	s.BeginPath()
	s.Rect(0, 0, 5, 5)
	s.StrokePath("#fff", 1)
	if strings.Count(s.String(), "stroke-dasharray") != 1 {
		t.Fatalf("dash reset not honored")
	}
}

func TestPresetSizes(t *testing.T) {
	cases := []struct {
		p    PresetName
		w, h int
	}{
		{PresetHD, 1280, 720},
		{PresetFHD, 1920, 1080},
		{Preset4K, 3840, 2160},
		{PresetSquare, 2048, 2048},
		{PresetName("bogus"), 1920, 1080},
	}
	for _, c := range cases {
		w, h := PresetSize(c.p)
		if w != c.w || h != c.h {
			t.Fatalf("PresetSize(%s) = %dx%d", c.p, w, h)
		}
	}
}

func TestRasterSurfaceRejectsInvalidSize(t *testing.T) {
	if _, err := NewRasterSurface(0, 100); err == nil {
		t.Fatalf("zero width must error")
	}
	if _, err := NewPDFSurface(100, -1); err == nil {
		t.Fatalf("negative height must error")
	}
}
