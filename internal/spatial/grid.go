/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package spatial implements the uniform-grid broad-phase index over board
// shapes. Cells map to id sets; a query returns a superset of the shapes
// intersecting a rectangle (false positives expected, false negatives
// never), leaving exact checks to the caller's narrow phase.
package spatial

import (
	"math"

	"goboard/internal/board"
)

// DefaultCellSize is the grid cell edge in world units. Smaller cells mean
// fewer false positives but more cells touched per large shape; size it
// relative to typical shape extents.
const DefaultCellSize = 100

// Grid is a uniform spatial hash from grid cells to shape id sets. It
// stores identifiers only; the host's shape list remains the single owner
// of shape data. Not safe for concurrent mutation; the engine serializes
// access on its render thread.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[string]struct{}
}

// cellKey packs the two signed 32-bit cell coordinates into one map key.
type cellKey uint64

func keyFor(cx, cy int32) cellKey {
	return cellKey(uint64(uint32(cx))<<32 | uint64(uint32(cy)))
}

// NewGrid returns an empty index; cellSize <= 0 selects DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{cellSize: cellSize, cells: make(map[cellKey]map[string]struct{})}
}

// CellSize reports the configured cell edge length.
func (g *Grid) CellSize() float64 { return g.cellSize }

// cellRange returns the inclusive cell coordinate span covered by b.
func (g *Grid) cellRange(b board.Box) (x0, y0, x1, y1 int32) {
	x0 = int32(math.Floor(b.Left / g.cellSize))
	y0 = int32(math.Floor(b.Top / g.cellSize))
	x1 = int32(math.Floor(b.Right / g.cellSize))
	y1 = int32(math.Floor(b.Bottom / g.cellSize))
	return
}

// Add inserts the shape id into every cell its bounding box covers.
// Shapes without a computable box are ignored.
func (g *Grid) Add(s *board.Shape) {
	b, ok := s.Bounds()
	if !ok {
		return
	}
	x0, y0, x1, y1 := g.cellRange(b)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			k := keyFor(cx, cy)
			ids := g.cells[k]
			if ids == nil {
				ids = make(map[string]struct{})
				g.cells[k] = ids
			}
			ids[s.ID] = struct{}{}
		}
	}
}

// Remove discards the id from every cell, deleting buckets that empty out.
// A full scan is fine here: removal is rare next to queries.
func (g *Grid) Remove(id string) {
	for k, ids := range g.cells {
		if _, ok := ids[id]; !ok {
			continue
		}
		delete(ids, id)
		if len(ids) == 0 {
			delete(g.cells, k)
		}
	}
}

// Update re-derives the shape's cells. Remove-then-add never leaves stale
// entries behind, whatever the old box was.
func (g *Grid) Update(s *board.Shape) {
	g.Remove(s.ID)
	g.Add(s)
}

// Query returns the union of id sets across every cell the bounds cover.
// The result may include ids whose true box does not intersect bounds;
// callers refine with per-shape tests.
func (g *Grid) Query(b board.Box) map[string]struct{} {
	out := make(map[string]struct{})
	x0, y0, x1, y1 := g.cellRange(b)
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			for id := range g.cells[keyFor(cx, cy)] {
				out[id] = struct{}{}
			}
		}
	}
	return out
}

// Rebuild clears the index and bulk-loads the given shapes.
func (g *Grid) Rebuild(shapes []*board.Shape) {
	g.Clear()
	for _, s := range shapes {
		g.Add(s)
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	g.cells = make(map[cellKey]map[string]struct{})
}

// Cells reports the number of occupied cells. Test hook for the
// no-empty-buckets invariant.
func (g *Grid) Cells() int { return len(g.cells) }
