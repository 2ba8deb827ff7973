package preset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is a decoded preset file. A file may also be written as a bare list
// of entries, in which case Version is empty.
type File struct {
	Version string     `json:"version,omitempty" yaml:"version,omitempty"`
	Presets []RawEntry `json:"presets" yaml:"presets"`
}

// ParseFormat accepts the format names used on the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported preset format %q (expected json or yaml)", name)
	}
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported preset file extension %q (expected .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Decode reads a preset file in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported preset format %q", format)
	}
}

func decodeYAML(data []byte) (*File, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	f := &File{}
	if len(root.Content) == 0 {
		return f, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if root.Content[0].Kind == yaml.SequenceNode {
		err := dec.Decode(&f.Presets)
		return f, err
	}
	if err := dec.Decode(f); err != nil {
		return nil, err
	}
	return f, nil
}

func decodeJSON(data []byte) (*File, error) {
	trimmed := bytes.TrimSpace(data)
	f := &File{}
	if len(trimmed) == 0 {
		return f, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	dec.UseNumber()

	if trimmed[0] == '[' {
		if err := dec.Decode(&f.Presets); err != nil {
			return nil, err
		}
		return f, nil
	}
	if err := dec.Decode(f); err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile decodes the preset file at path, choosing the format from its
// extension.
func ReadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}

	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}
	return f, nil
}

// Builtin returns the preset list compiled into the binary.
func Builtin() *File {
	f, err := decodeYAML(builtinPresets)
	if err != nil {
		panic(fmt.Sprintf("preset: embedded presets.yaml is malformed: %v", err))
	}
	return f
}

// LoadFile reads, version-checks and validates the preset file at path.
func LoadFile(path string, opts ...Option) (*Registry, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Load(opts...)
}

func LoadBuiltin(opts ...Option) (*Registry, error) {
	return Builtin().Load(opts...)
}

func (f *File) Load(opts ...Option) (*Registry, error) {
	if err := CheckVersion(f.Version); err != nil {
		return nil, err
	}
	return Load(f.Presets, opts...)
}

// Encode writes records as a preset file. JSON output is the bare list the
// web front-end consumes; YAML output is a versioned document.
func Encode(w io.Writer, format Format, records []Record) error {
	switch format {
	case FormatJSON:
		if records == nil {
			records = []Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)

	case FormatYAML:
		f := File{Version: FormatVersion, Presets: make([]RawEntry, 0, len(records))}
		for _, rec := range records {
			f.Presets = append(f.Presets, rec.Raw())
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported preset format %q", format)
	}
}
