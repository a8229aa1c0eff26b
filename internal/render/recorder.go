/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

// Recorder is a Surface that records every call instead of drawing.
// Tests assert drawing behavior against the op log, and the CLI trace
// command prints it for debugging frame content.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// Op is one recorded Surface call. Args carries the numeric arguments in
// declaration order; Color, Width and Text are filled where the call has
// them.
type Op struct {
	Name  string
	Args  []float64
	Color string
	Width float64
	Text  string
}

// NewRecorder returns a Recorder of the given surface size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) record(op Op) { r.Ops = append(r.Ops, op) }

// ByName returns all recorded ops with the given name, in order.
func (r *Recorder) ByName(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Count returns the number of ops with the given name.
func (r *Recorder) Count(name string) int { return len(r.ByName(name)) }

// Reset clears the op log, keeping the size.
func (r *Recorder) Reset() { r.Ops = nil }

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(fill string) { r.record(Op{Name: "clear", Color: fill}) }

func (r *Recorder) Push() { r.record(Op{Name: "push"}) }
func (r *Recorder) Pop()  { r.record(Op{Name: "pop"}) }

func (r *Recorder) Translate(dx, dy float64) {
	r.record(Op{Name: "translate", Args: []float64{dx, dy}})
}

func (r *Recorder) Scale(sx, sy float64) {
	r.record(Op{Name: "scale", Args: []float64{sx, sy}})
}

func (r *Recorder) SetDash(segments ...float64) {
	r.record(Op{Name: "dash", Args: append([]float64(nil), segments...)})
}

func (r *Recorder) BeginPath() { r.record(Op{Name: "begin"}) }

func (r *Recorder) MoveTo(x, y float64) { r.record(Op{Name: "moveto", Args: []float64{x, y}}) }
func (r *Recorder) LineTo(x, y float64) { r.record(Op{Name: "lineto", Args: []float64{x, y}}) }
func (r *Recorder) ClosePath()          { r.record(Op{Name: "close"}) }

func (r *Recorder) Circle(cx, cy, rad float64) {
	r.record(Op{Name: "circle", Args: []float64{cx, cy, rad}})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.record(Op{Name: "rect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) StrokePath(stroke string, width float64) {
	r.record(Op{Name: "stroke", Color: stroke, Width: width})
}

func (r *Recorder) FillPath(fill string) { r.record(Op{Name: "fill", Color: fill}) }

func (r *Recorder) DrawText(text, fill string, x, y, size float64) {
	r.record(Op{Name: "text", Args: []float64{x, y, size}, Color: fill, Text: text})
}
