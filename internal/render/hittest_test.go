/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"testing"

	"goboard/internal/board"
)

func TestHitTestTopmostWins(t *testing.T) {
	e, _ := newTestEngine(t, 800, 600)
	a := rectShape("a", 0, 0, 100, 100)
	b := rectShape("b", 50, 50, 100, 100) // drawn after a, overlaps it
	shapes := []*board.Shape{a, b}
	e.UpdateShapes(shapes)

	hit := e.HitTest(75, 75, shapes, HitOptions{})
	if hit == nil || hit.ID != "b" {
		t.Fatalf("hit = %v, want topmost b", hit)
	}

	// a point only inside a
	hit = e.HitTest(10, 10, shapes, HitOptions{})
	if hit == nil || hit.ID != "a" {
		t.Fatalf("hit = %v, want a", hit)
	}
}

func TestHitTestExcludeLocked(t *testing.T) {
	e, _ := newTestEngine(t, 800, 600)
	a := rectShape("a", 0, 0, 100, 100)
	b := rectShape("b", 0, 0, 100, 100)
	shapes := []*board.Shape{a, b}
	e.UpdateShapes(shapes)

	locked := map[string]struct{}{"b": {}}
	hit := e.HitTest(50, 50, shapes, HitOptions{ExcludeLocked: true, Locked: locked})
	if hit == nil || hit.ID != "a" {
		t.Fatalf("hit = %v, want a (b is locked)", hit)
	}

	// without the flag, the locked set is ignored
	hit = e.HitTest(50, 50, shapes, HitOptions{Locked: locked})
	if hit == nil || hit.ID != "b" {
		t.Fatalf("hit = %v, want b", hit)
	}
}

func TestHitTestTextWidthHeuristicScenario(t *testing.T) {
	// text "Hi" at (0,0), fontSize 16: estimated width 19.2, height 16;
	// (5,5) lands inside.
	e, _ := newTestEngine(t, 800, 600)
	txt := &board.Shape{ID: "t", Kind: board.KindText, X: 0, Y: 0, Text: "Hi", FontSize: 16}
	shapes := []*board.Shape{txt}
	e.UpdateShapes(shapes)

	if hit := e.HitTest(5, 5, shapes, HitOptions{Radius: 10}); hit == nil || hit.ID != "t" {
		t.Fatalf("hit = %v, want text shape", hit)
	}
	// beyond the estimated width
	if hit := e.HitTest(30, 5, shapes, HitOptions{Radius: 10}); hit != nil {
		t.Fatalf("hit = %v, want none past estimated width", hit)
	}
}

func TestHitTestPathVertexProximityOnly(t *testing.T) {
	e, _ := newTestEngine(t, 800, 600)
	p := &board.Shape{ID: "p", Kind: board.KindPath, Points: []board.Point{{X: 0, Y: 0}, {X: 200, Y: 0}}}
	shapes := []*board.Shape{p}
	e.UpdateShapes(shapes)

	if hit := e.HitTest(5, 3, shapes, HitOptions{}); hit == nil {
		t.Fatalf("expected hit near vertex")
	}
	// halfway along the segment, far from both vertices: documented miss
	if hit := e.HitTest(100, 0, shapes, HitOptions{}); hit != nil {
		t.Fatalf("segment interior must not hit (vertex-proximity rule)")
	}
}

func TestHitTestEmptyPathNeverHit(t *testing.T) {
	e, _ := newTestEngine(t, 800, 600)
	p := &board.Shape{ID: "p0", Kind: board.KindPath}
	shapes := []*board.Shape{p}
	e.UpdateShapes(shapes)
	if hit := e.HitTest(0, 0, shapes, HitOptions{}); hit != nil {
		t.Fatalf("empty path must never hit")
	}
}

func TestHitTestDefaultRadius(t *testing.T) {
	e, _ := newTestEngine(t, 800, 600)
	p := &board.Shape{ID: "p", Kind: board.KindPath, Points: []board.Point{{X: 0, Y: 0}}}
	shapes := []*board.Shape{p}
	e.UpdateShapes(shapes)

	// 9 units away: inside the default radius of 10
	if hit := e.HitTest(9, 0, shapes, HitOptions{}); hit == nil {
		t.Fatalf("expected hit inside default radius")
	}
	if hit := e.HitTest(11, 0, shapes, HitOptions{}); hit != nil {
		t.Fatalf("expected miss outside default radius")
	}
}

func TestHitTestMissReturnsNil(t *testing.T) {
	e, _ := newTestEngine(t, 800, 600)
	shapes := []*board.Shape{rectShape("a", 0, 0, 10, 10)}
	e.UpdateShapes(shapes)
	if hit := e.HitTest(500, 500, shapes, HitOptions{}); hit != nil {
		t.Fatalf("want nil on miss, got %v", hit)
	}
}
