/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package boardfile

import (
	"github.com/google/uuid"

	"goboard/internal/board"
)

// Sample builds a small demo document exercising every shape kind. Useful
// for smoke-testing exporters and as a starting point for new boards.
func Sample() *Document {
	return &Document{
		Version: CurrentVersion,
		Name:    "Sample Board",
		Shapes: []*board.Shape{
			{ID: uuid.NewString(), Kind: board.KindRectangle, X: 60, Y: 60, Width: 220, Height: 140, FillColor: "#1e3a5f", Color: "#3b82f6"},
			{ID: uuid.NewString(), Kind: board.KindCircle, X: 340, Y: 60, Width: 140, Height: 140, Color: "#22c55e"},
			{ID: uuid.NewString(), Kind: board.KindTriangle, X: 540, Y: 60, Width: 140, Height: 140, Color: "#eab308"},
			{ID: uuid.NewString(), Kind: board.KindDiamond, X: 60, Y: 260, Width: 140, Height: 140, Color: "#ec4899"},
			{ID: uuid.NewString(), Kind: board.KindHexagon, X: 260, Y: 260, Width: 140, Height: 140, Color: "#8b5cf6"},
			{ID: uuid.NewString(), Kind: board.KindArrow, X: 460, Y: 260, Width: 160, Height: 100},
			{ID: uuid.NewString(), Kind: board.KindPath, Points: []board.Point{
				{X: 80, Y: 470}, {X: 140, Y: 440}, {X: 200, Y: 490}, {X: 260, Y: 450},
			}, Color: "#f97316", StrokeWidth: 3},
			{ID: uuid.NewString(), Kind: board.KindText, X: 340, Y: 450, Text: "hello board", FontSize: 28, Color: "#e5e7eb"},
			{ID: uuid.NewString(), Kind: board.KindSticky, X: 620, Y: 430, Width: 160, Height: 160, Text: "ship it"},
			{ID: uuid.NewString(), Kind: board.KindConnector, FromX: 280, FromY: 130, ToX: 340, ToY: 130},
		},
	}
}
