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
	"os"
	"path/filepath"
	"strings"

	"goboard/internal/board"
	"goboard/internal/render"
)

// PresetName represents a named output size.
type PresetName string

const (
	PresetHD     PresetName = "hd"     // 1280x720
	PresetFHD    PresetName = "fhd"    // 1920x1080
	Preset4K     PresetName = "4k"     // 3840x2160
	PresetSquare PresetName = "square" // 2048x2048
)

// PresetSize resolves a preset name to pixel dimensions. Unknown names
// fall back to fhd.
func PresetSize(p PresetName) (int, int) {
	switch p {
	case PresetHD:
		return 1280, 720
	case Preset4K:
		return 3840, 2160
	case PresetSquare:
		return 2048, 2048
	default:
		return 1920, 1080
	}
}

// Options controls a board export.
type Options struct {
	Width, Height int                 // output size; zero means 1920x1080
	Frame         render.FrameOptions // pan, zoom, background, grid
	CellSize      float64             // spatial index cell size; zero means default
}

func (o *Options) size() (int, int) {
	if o.Width <= 0 || o.Height <= 0 {
		return PresetSize(PresetFHD)
	}
	return o.Width, o.Height
}

// ExportBoard renders shapes to outPath, picking the format from the file
// extension (.png, .svg or .pdf).
func ExportBoard(shapes []*board.Shape, outPath string, opt Options) error {
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".png":
		return ExportBoardPNG(shapes, outPath, opt)
	case ".svg":
		return ExportBoardSVG(shapes, outPath, opt)
	case ".pdf":
		return ExportBoardPDF(shapes, outPath, opt)
	default:
		return fmt.Errorf("unknown export format: %s", filepath.Ext(outPath))
	}
}

// ExportBoardPNG rasterizes one frame to a PNG file.
func ExportBoardPNG(shapes []*board.Shape, outPath string, opt Options) error {
	w, h := opt.size()
	sur, err := NewRasterSurface(w, h)
	if err != nil {
		return err
	}
	if err := renderFrame(sur, shapes, opt); err != nil {
		return err
	}
	f, err := createOut(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := sur.EncodePNG(f); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return f.Close()
}

// ExportBoardSVG writes one frame as an SVG document.
func ExportBoardSVG(shapes []*board.Shape, outPath string, opt Options) error {
	w, h := opt.size()
	sur := NewSVGSurface(float64(w), float64(h))
	if err := renderFrame(sur, shapes, opt); err != nil {
		return err
	}
	f, err := createOut(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := sur.WriteTo(f); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return f.Close()
}

// ExportBoardPDF writes one frame as a single-page PDF.
func ExportBoardPDF(shapes []*board.Shape, outPath string, opt Options) error {
	w, h := opt.size()
	sur, err := NewPDFSurface(float64(w), float64(h))
	if err != nil {
		return err
	}
	if err := renderFrame(sur, shapes, opt); err != nil {
		return err
	}
	f, err := createOut(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := sur.Output(f); err != nil {
		return err
	}
	return f.Close()
}

func renderFrame(sur render.Surface, shapes []*board.Shape, opt Options) error {
	eng, err := render.NewEngine(sur, render.Options{CellSize: opt.CellSize})
	if err != nil {
		return err
	}
	defer eng.Destroy()
	eng.UpdateShapes(shapes)
	eng.Render(opt.Frame)
	return nil
}

func createOut(outPath string) (*os.File, error) {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure out dir: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outPath, err)
	}
	return f, nil
}
