/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in
// the user scope. Environment variables are treated as read-only overrides
// at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // built-in name or path to a theme YAML
}

type EngineConfig struct {
	CellSize  float64 `yaml:"cell_size"`  // spatial index cell size in world units
	HitRadius float64 `yaml:"hit_radius"` // hit test tolerance in world units
}

type RenderConfig struct {
	GridSize   float64 `yaml:"grid_size"`
	Background string  `yaml:"background"`
	GridColor  string  `yaml:"grid_color"`
	HideGrid   bool    `yaml:"hide_grid"`
}

type ExportConfig struct {
	Preset string `yaml:"preset"` // hd | fhd | 4k | square
	Width  int    `yaml:"width"`  // explicit size wins over preset
	Height int    `yaml:"height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Engine        EngineConfig  `yaml:"engine"`
	Render        RenderConfig  `yaml:"render"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: ""},
		Engine:        EngineConfig{CellSize: 100, HitRadius: 10},
		Render:        RenderConfig{GridSize: 20},
		Export:        ExportConfig{Preset: "fhd"},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvTelemetryOptIn = "GB_TELEMETRY_OPT_IN"
	EnvTheme          = "GB_THEME"
	EnvCellSize       = "GB_CELL_SIZE"
	EnvHitRadius      = "GB_HIT_RADIUS"
	EnvGridSize       = "GB_GRID_SIZE"
	EnvExportPreset   = "GB_EXPORT_PRESET"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "GB_LOG_LEVEL"
	EnvLogFormat = "GB_LOG_FORMAT"
	EnvLogSource = "GB_LOG_SOURCE"
	EnvLogFile   = "GB_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoBoard")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoBoard")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "goboard")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	if src.Engine.CellSize > 0 {
		dst.Engine.CellSize = src.Engine.CellSize
	}
	if src.Engine.HitRadius > 0 {
		dst.Engine.HitRadius = src.Engine.HitRadius
	}
	if src.Render.GridSize > 0 {
		dst.Render.GridSize = src.Render.GridSize
	}
	if src.Render.Background != "" {
		dst.Render.Background = src.Render.Background
	}
	if src.Render.GridColor != "" {
		dst.Render.GridColor = src.Render.GridColor
	}
	dst.Render.HideGrid = src.Render.HideGrid
	if src.Export.Preset != "" {
		dst.Export.Preset = strings.ToLower(strings.TrimSpace(src.Export.Preset))
	}
	if src.Export.Width > 0 {
		dst.Export.Width = src.Export.Width
	}
	if src.Export.Height > 0 {
		dst.Export.Height = src.Export.Height
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.General.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCellSize)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Engine.CellSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvHitRadius)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Engine.HitRadius = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvGridSize)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.Render.GridSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPreset)); v != "" {
		cfg.Export.Preset = strings.ToLower(v)
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func isTruthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "general.telemetry_opt_in":
		env = EnvTelemetryOptIn
	case "general.theme":
		env = EnvTheme
	case "engine.cell_size":
		env = EnvCellSize
	case "engine.hit_radius":
		env = EnvHitRadius
	case "render.grid_size":
		env = EnvGridSize
	case "export.preset":
		env = EnvExportPreset
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}
