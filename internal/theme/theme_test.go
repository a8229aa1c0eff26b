/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"goboard/internal/render"
)

func TestDefaultMatchesRenderDefaults(t *testing.T) {
	d := Default()
	if d.Background != render.DefaultBackground {
		t.Fatalf("default theme background %q diverged from engine default %q", d.Background, render.DefaultBackground)
	}
}

func TestResolveBuiltinAndFile(t *testing.T) {
	if th, err := Resolve("light"); err != nil || th.Background != "#f8fafc" {
		t.Fatalf("Resolve(light) = %+v, %v", th, err)
	}
	if th, err := Resolve(""); err != nil || th.Name != "dark" {
		t.Fatalf("Resolve(\"\") = %+v, %v", th, err)
	}

	path := filepath.Join(t.TempDir(), "custom.yaml")
	yamlDoc := "name: custom\nbackground: \"#101010\"\ngridColor: \"#202020\"\n"
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve(file): %v", err)
	}
	if th.Name != "custom" || th.Background != "#101010" || th.GridColor != "#202020" {
		t.Fatalf("file theme = %+v", th)
	}
}

func TestResolveMissingFileErrors(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing file must error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.yaml")
	want := Theme{Name: "x", Background: "#000000", GridColor: "#111111"}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestApplyToRespectsExplicitFrameColors(t *testing.T) {
	f := render.FrameOptions{Background: "#ffffff"}
	Default().ApplyTo(&f)
	if f.Background != "#ffffff" {
		t.Fatalf("explicit background overwritten")
	}
	if f.GridColor != Default().GridColor {
		t.Fatalf("unset grid color not filled")
	}
}

func TestNamesStable(t *testing.T) {
	names := Names()
	if len(names) != 3 || names[0] != "dark" || names[1] != "light" || names[2] != "midnight" {
		t.Fatalf("names = %v", names)
	}
	for _, n := range names {
		if _, ok := Builtin(n); !ok {
			t.Fatalf("listed theme %q not resolvable", n)
		}
	}
}
