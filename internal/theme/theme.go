/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package theme holds named board color schemes. Themes are small YAML
// documents so boards can ship with custom palettes next to their JSON.
package theme

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"goboard/internal/render"
)

// Theme is a board color scheme. Empty fields fall back to the render
// defaults when applied.
type Theme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	GridColor  string `yaml:"gridColor"`
}

var builtin = map[string]Theme{
	"dark": {
		Name:       "dark",
		Background: "#1a1a2e",
		GridColor:  "#2a2a3e",
	},
	"light": {
		Name:       "light",
		Background: "#f8fafc",
		GridColor:  "#e2e8f0",
	},
	"midnight": {
		Name:       "midnight",
		Background: "#0b1021",
		GridColor:  "#1b2240",
	},
}

// Default returns the scheme the engine also falls back to.
func Default() Theme { return builtin["dark"] }

// Builtin looks up a named built-in theme.
func Builtin(name string) (Theme, bool) {
	t, ok := builtin[name]
	return t, ok
}

// Names lists the built-in themes in stable order.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for n := range builtin {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Load reads a theme from a YAML file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	return t, nil
}

// Save writes the theme as YAML.
func Save(t Theme, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// Resolve picks a theme by name or file path: built-in names win, anything
// else is treated as a YAML file. An empty name yields the default.
func Resolve(nameOrPath string) (Theme, error) {
	if nameOrPath == "" {
		return Default(), nil
	}
	if t, ok := Builtin(nameOrPath); ok {
		return t, nil
	}
	return Load(nameOrPath)
}

// ApplyTo fills the frame's color fields that are still unset.
func (t Theme) ApplyTo(f *render.FrameOptions) {
	if f.Background == "" {
		f.Background = t.Background
	}
	if f.GridColor == "" {
		f.GridColor = t.GridColor
	}
}
