/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package board

import "math"

// Box is an axis-aligned rectangle in world coordinates.
// Left <= Right and Top <= Bottom hold for every box produced here.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Bottom - b.Top }

// CenterX and CenterY locate the box midpoint.
func (b Box) CenterX() float64 { return (b.Left + b.Right) / 2 }
func (b Box) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Intersects reports whether the two boxes overlap, edges included.
func (b Box) Intersects(o Box) bool {
	return b.Left <= o.Right && b.Right >= o.Left && b.Top <= o.Bottom && b.Bottom >= o.Top
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// Expand grows the box by pad on all sides (negative shrinks).
func (b Box) Expand(pad float64) Box {
	return Box{Left: b.Left - pad, Top: b.Top - pad, Right: b.Right + pad, Bottom: b.Bottom + pad}
}

// boxAround normalizes x/y/width/height into a Box, tolerating negative
// drag-drawn dimensions.
func boxAround(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + math.Abs(w), Bottom: y + math.Abs(h)}
}
