/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package boardfile loads and saves board documents as JSON. Documents are
// validated against an embedded schema on load; the schema requires only
// id and type per shape, so files written by newer versions with extra
// shape kinds still open.
package boardfile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"goboard/internal/board"
)

//go:embed schema.json
var schemaBytes []byte

// CurrentVersion is written into new documents.
const CurrentVersion = 1

// Document is a named collection of shapes in z-order.
type Document struct {
	Version int            `json:"version"`
	Name    string         `json:"name,omitempty"`
	Shapes  []*board.Shape `json:"shapes"`
}

// ValidationError carries the schema violations of a rejected document.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid board document: %s", e.Path, strings.Join(e.Problems, "; "))
}

// Load reads and validates a board document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	if err := validate(path, data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	return &doc, nil
}

// Save writes the document transactionally: temp file in the target
// directory, then rename over the destination.
func Save(doc *Document, path string) error {
	if doc == nil {
		return errors.New("nil document")
	}
	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	if doc.Shapes == nil {
		doc.Shapes = []*board.Shape{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure board dir: %w", err)
	}
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(path), os.Getpid(), rand.Int()))
	if err := os.WriteFile(temp, data, 0o644); err != nil {
		return fmt.Errorf("write temp board: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace board: %w", err)
	}
	return nil
}

func validate(path string, data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate board: %w", err)
	}
	if result.Valid() {
		return nil
	}
	verr := &ValidationError{Path: path}
	for _, p := range result.Errors() {
		verr.Problems = append(verr.Problems, p.String())
	}
	return verr
}
