package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// ScaffoldStep describes one dialog for NewScaffold.
type ScaffoldStep struct {
	Target string
	Title  string
	Body   string
}

// NewScaffold builds a starter definition: a spotlight followed by one
// dialog per step.
func NewScaffold(id, title string, steps []ScaffoldStep) *Definition {
	def := &Definition{
		Schema:        SchemaVersion,
		ID:            id,
		Title:         title,
		DefaultActive: true,
		Children:      []ChildSpec{{Kind: KindSpotlight}},
	}
	for _, s := range steps {
		def.Children = append(def.Children, ChildSpec{
			Kind:      KindDialog,
			Target:    s.Target,
			Title:     s.Title,
			Body:      s.Body,
			Placement: string(PlacementBottom),
		})
	}
	return def
}

// Encode serializes a definition.
func Encode(def *Definition, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(def); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(def); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// Writer saves definitions through a FileSystem.
type Writer struct {
	fs ports.FileSystem
}

// NewWriter creates a new Writer.
func NewWriter(fs ports.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Write saves def at path in the format implied by its extension. An
// existing file is only replaced when overwrite is set.
func (w *Writer) Write(path string, def *Definition, overwrite bool) error {
	format, ok := FormatFor(path)
	if !ok {
		return NewUnsupportedFormatError(path)
	}
	if !overwrite && w.fs.Exists(path) {
		return NewUserError(ErrCodeValidationFailed, "definition already exists").
			WithContext(path).
			WithSuggestion("Pass --force to overwrite it, or choose another path.")
	}

	data, err := Encode(def, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return w.fs.WriteFile(path, data, 0o644)
}
