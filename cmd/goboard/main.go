/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"goboard/internal/board"
	"goboard/internal/boardfile"
	"goboard/internal/config"
	"goboard/internal/crash"
	"goboard/internal/export"
	applog "goboard/internal/log"
	"goboard/internal/render"
	"goboard/internal/telemetry"
	"goboard/internal/theme"
	"goboard/internal/version"
)

func usage() {
	fmt.Println("GoBoard — whiteboard rendering and spatial queries")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  goboard version|-v|--version                Show version")
	fmt.Println("  goboard sample <file.json>                  Write a demo board document")
	fmt.Println("  goboard render <board.json> -o <out.(png|svg|pdf)>  Export one frame")
	fmt.Println("      [--zoom z] [--pan x,y] [--no-grid] [--theme name|file] [--preset hd|fhd|4k|square]")
	fmt.Println("  goboard hittest <board.json> <x> <y>        Report the topmost shape at a point")
	fmt.Println("  goboard themes                              List built-in themes")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	telemetry.InitDefault()
	l := applog.WithComponent("cli")

	var doc *boardfile.Document
	var boardPath string
	defer func() { crash.Recover(doc, boardPath) }()

	cfg, err := config.Load()
	if err != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", err))
		cfg = config.Defaults()
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("GoBoard — whiteboard rendering and spatial queries")
			fmt.Println(version.String())
			return
		case "sample":
			if len(args) < 3 {
				fmt.Println("sample requires <file.json>")
				usage()
				os.Exit(2)
			}
			boardPath, _ = filepath.Abs(args[2])
			doc = boardfile.Sample()
			l.Info("write sample board", slog.String("path", boardPath))
			if err := boardfile.Save(doc, boardPath); err != nil {
				l.Error("sample failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote sample board to", boardPath)
			return
		case "render":
			fs := flag.NewFlagSet("render", flag.ExitOnError)
			out := fs.String("o", "", "output file (.png, .svg or .pdf)")
			zoom := fs.Float64("zoom", 0, "zoom factor (0 keeps the default of 1)")
			pan := fs.String("pan", "", "pan offset as x,y in screen units")
			noGrid := fs.Bool("no-grid", false, "hide the background grid")
			themeName := fs.String("theme", cfg.General.Theme, "built-in theme name or theme YAML path")
			preset := fs.String("preset", "", "output size preset: hd, fhd, 4k, square")
			_ = fs.Parse(args[2:])
			if fs.NArg() < 1 || *out == "" {
				fmt.Println("render requires <board.json> and -o <out.(png|svg|pdf)>")
				usage()
				os.Exit(2)
			}
			boardPath, _ = filepath.Abs(fs.Arg(0))
			outPath, _ := filepath.Abs(*out)
			d, err := boardfile.Load(boardPath)
			if err != nil {
				l.Error("open board failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			doc = d
			telemetry.Event("render", map[string]any{"shapes": len(d.Shapes)})

			th, err := theme.Resolve(*themeName)
			if err != nil {
				l.Error("theme resolve failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			frame := render.FrameOptions{
				Zoom:       *zoom,
				GridSize:   cfg.Render.GridSize,
				Background: cfg.Render.Background,
				GridColor:  cfg.Render.GridColor,
				HideGrid:   cfg.Render.HideGrid || *noGrid,
			}
			if *pan != "" {
				px, py, err := parsePan(*pan)
				if err != nil {
					fmt.Println("Error:", err)
					os.Exit(2)
				}
				frame.Pan = board.Point{X: px, Y: py}
			}
			th.ApplyTo(&frame)

			w, h := cfg.Export.Width, cfg.Export.Height
			if *preset != "" {
				w, h = export.PresetSize(export.PresetName(strings.ToLower(*preset)))
			} else if w <= 0 || h <= 0 {
				w, h = export.PresetSize(export.PresetName(cfg.Export.Preset))
			}
			opt := export.Options{Width: w, Height: h, Frame: frame, CellSize: cfg.Engine.CellSize}
			l.Info("render board", slog.String("board", boardPath), slog.String("out", outPath),
				slog.Int("shapes", len(d.Shapes)), slog.Int("w", w), slog.Int("h", h))
			if err := export.ExportBoard(d.Shapes, outPath, opt); err != nil {
				l.Error("render failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Rendered", boardPath, "to", outPath)
			return
		case "hittest":
			if len(args) < 5 {
				fmt.Println("hittest requires <board.json> <x> <y>")
				usage()
				os.Exit(2)
			}
			boardPath, _ = filepath.Abs(args[2])
			x, errX := strconv.ParseFloat(args[3], 64)
			y, errY := strconv.ParseFloat(args[4], 64)
			if errX != nil || errY != nil {
				fmt.Println("hittest coordinates must be numbers")
				os.Exit(2)
			}
			d, err := boardfile.Load(boardPath)
			if err != nil {
				l.Error("open board failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			doc = d

			eng, err := render.NewEngine(render.NewRecorder(1, 1), render.Options{CellSize: cfg.Engine.CellSize})
			if err != nil {
				l.Error("engine init failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			defer eng.Destroy()
			eng.UpdateShapes(d.Shapes)
			hit := eng.HitTest(x, y, d.Shapes, render.HitOptions{Radius: cfg.Engine.HitRadius})
			if hit == nil {
				fmt.Printf("No shape at (%g, %g)\n", x, y)
				return
			}
			fmt.Printf("Hit %s (%s) at (%g, %g)\n", hit.ID, hit.Kind, x, y)
			if b, ok := hit.Bounds(); ok {
				fmt.Printf("Bounds: left=%g top=%g right=%g bottom=%g\n", b.Left, b.Top, b.Right, b.Bottom)
			}
			return
		case "themes":
			for _, n := range theme.Names() {
				t, _ := theme.Builtin(n)
				fmt.Printf("%-10s background=%s grid=%s\n", n, t.Background, t.GridColor)
			}
			return
		}
	}

	usage()
}

func parsePan(v string) (float64, float64, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("pan must be x,y, got %q", v)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("pan must be numeric x,y, got %q", v)
	}
	return x, y, nil
}
