// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package luc reads and writes the JSON files of an amendment run: the land
// use code document, the audit log, and the optional manual amendments file.
package luc

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pdiddy/luc-amender/pkg/types"
)

// ErrInvalidDocument is returned when the LUC file is not JSON or does not
// match the LUC schema.
var ErrInvalidDocument = errors.New("invalid LUC document")

//go:embed luc.schema.json
var schemaJSON []byte

const schemaURL = "luc.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load LUC schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile LUC schema: %w", err)
	}
	return schema, nil
})

// LoadDocument reads and validates the LUC document at path. A missing file
// yields an error wrapping fs.ErrNotExist; malformed or non-conforming JSON
// yields one wrapping ErrInvalidDocument.
func LoadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading LUC document: %w", err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidDocument, err)
	}
	return &doc, nil
}

func validate(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: malformed JSON: %w", ErrInvalidDocument, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

// SaveDocument writes doc to path as 2-space indented JSON, creating the
// parent directory if needed.
func SaveDocument(path string, doc *types.Document) error {
	return writeJSON(path, doc)
}

// SaveLog writes the audit log to path as a 2-space indented JSON array.
func SaveLog(path string, entries []types.LogEntry) error {
	if entries == nil {
		entries = []types.LogEntry{}
	}
	return writeJSON(path, entries)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
