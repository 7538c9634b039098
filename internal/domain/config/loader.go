package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// Format is a definition file encoding.
type Format string

// Formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Loader reads tour definitions through a FileSystem.
type Loader struct {
	fs ports.FileSystem
}

// NewLoader creates a new Loader.
func NewLoader(fs ports.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses the definition at path. It does not validate; call
// Validate on the result.
func (l *Loader) Load(path string) (*Definition, error) {
	format, ok := FormatFor(path)
	if !ok {
		return nil, NewUnsupportedFormatError(path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewDefinitionNotFoundError(path).WithUnderlying(err)
		}
		return nil, err
	}

	def, err := Parse(data, format)
	if err != nil {
		return nil, NewParseError(path, string(format), err)
	}
	def.Source = path
	return def, nil
}

// Parse decodes a definition. Unknown keys are rejected so that typos
// surface instead of silently falling back to defaults.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, err
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	def.Schema = normalizeSchema(def.Schema)
	return &def, nil
}
