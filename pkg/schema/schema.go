// Package schema loads named tuple schema definitions from YAML files and
// compiles them into codec trees.
//
// In a live connection the driver builds codecs from server-sent type
// descriptors; this package is the offline stand-in used by tooling and
// tests, where the schema is agreed by file instead of by handshake.
package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vanirdb/vanir-go/pkg/codecs"
)

// typeIDNamespace seeds deterministic type ids so the same schema file
// always compiles to the same TypeID.
var typeIDNamespace = uuid.MustParse("9c3d1aa2-5b6f-4c8e-8b1d-7a0e44c0f3a7")

// Definition is a named tuple schema as declared in a YAML file.
type Definition struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field declares one named tuple field: either a scalar type name or a
// nested named tuple definition, never both.
type Field struct {
	Name   string  `yaml:"name"`
	Type   string  `yaml:"type,omitempty"`
	Fields []Field `yaml:"fields,omitempty"`
}

// scalarCodecs maps the type names usable in schema files to constructors.
var scalarCodecs = map[string]func() codecs.Codec{
	"int32":   func() codecs.Codec { return codecs.NewInt32Codec() },
	"int64":   func() codecs.Codec { return codecs.NewInt64Codec() },
	"float64": func() codecs.Codec { return codecs.NewFloat64Codec() },
	"bool":    func() codecs.Codec { return codecs.NewBoolCodec() },
	"str":     func() codecs.Codec { return codecs.NewStrCodec() },
	"bytes":   func() codecs.Codec { return codecs.NewBytesCodec() },
	"uuid":    func() codecs.Codec { return codecs.NewUUIDCodec() },
}

// Load reads a schema definition from the specified path.
func Load(path string) (*Definition, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file does not exist: %s", path)
	}

	// Resolve to an absolute path before reading.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid schema path: %w", err)
		}
		path = absPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("schema file %s has no name", path)
	}

	return &def, nil
}

// Compile builds the codec tree for the definition.
func (d *Definition) Compile() (*codecs.NamedTupleCodec, error) {
	return compile(d.Name, d.Fields)
}

func compile(name string, fields []Field) (*codecs.NamedTupleCodec, error) {
	names := make([]string, 0, len(fields))
	subs := make([]codecs.Codec, 0, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("named tuple %q: field with no name", name)
		}
		sub, err := compileField(name, f)
		if err != nil {
			return nil, err
		}
		names = append(names, f.Name)
		subs = append(subs, sub)
	}

	id := uuid.NewSHA1(typeIDNamespace, []byte(name))
	return codecs.NewNamedTupleCodec(id, name, subs, names)
}

func compileField(parent string, f Field) (codecs.Codec, error) {
	switch {
	case f.Type != "" && len(f.Fields) > 0:
		return nil, fmt.Errorf("named tuple %q: field %q declares both a type and nested fields", parent, f.Name)
	case len(f.Fields) > 0:
		return compile(parent+"."+f.Name, f.Fields)
	case f.Type != "":
		newCodec, ok := scalarCodecs[f.Type]
		if !ok {
			return nil, fmt.Errorf("named tuple %q: field %q has unknown type %q", parent, f.Name, f.Type)
		}
		return newCodec(), nil
	default:
		return nil, fmt.Errorf("named tuple %q: field %q declares neither a type nor nested fields", parent, f.Name)
	}
}
