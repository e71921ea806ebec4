package record

import (
	"reflect"

	"github.com/reoring/goarr/codec"
	js "github.com/reoring/goarr/jsonschema"
)

// JSONSchema projects a descriptor onto JSON Schema. Nested records are
// inlined; a record that refers back to itself is cut off as a bare object.
func JSONSchema(desc *Descriptor) (*js.Schema, error) {
	s, err := recordSchema(desc, map[reflect.Type]bool{})
	if err != nil {
		return nil, err
	}
	return js.Document(s), nil
}

func recordSchema(desc *Descriptor, seen map[reflect.Type]bool) (*js.Schema, error) {
	if seen[desc.Type] {
		return &js.Schema{Type: "object", Title: desc.Name}, nil
	}
	seen[desc.Type] = true
	defer delete(seen, desc.Type)

	s := &js.Schema{
		Title:                desc.Name,
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(desc.Fields)),
		AdditionalProperties: false,
	}
	for i := range desc.Fields {
		f := &desc.Fields[i]
		fs, err := typeSchema(&f.Type, seen)
		if err != nil {
			return nil, err
		}
		if f.Optional {
			fs = js.Nullable(fs)
		}
		if f.HasDefault && f.Type.Kind == KindTuple {
			fs.Default = []any{}
		}
		s.Properties[f.Name] = fs
		if !f.Optional && !f.HasDefault {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s, nil
}

func typeSchema(td *TypeDesc, seen map[reflect.Type]bool) (*js.Schema, error) {
	switch td.Kind {
	case KindEnum:
		vals := td.Enum.Values()
		enum := make([]any, len(vals))
		for i, v := range vals {
			enum[i] = v
		}
		return &js.Schema{Type: "string", Enum: enum}, nil
	case KindRecord:
		sub, err := Describe(td.GoType)
		if err != nil {
			return nil, err
		}
		return recordSchema(sub, seen)
	case KindTuple:
		items, err := typeSchema(td.Elem, seen)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	}
	switch td.Scalar {
	case codec.ScalarBool:
		return &js.Schema{Type: "boolean"}, nil
	case codec.ScalarInt:
		return &js.Schema{Type: "integer"}, nil
	case codec.ScalarFloat:
		return &js.Schema{Type: "number"}, nil
	case codec.ScalarDate:
		return &js.Schema{Type: "string", Format: "date"}, nil
	case codec.ScalarTime:
		return &js.Schema{Type: "string", Pattern: `^\d{2}(:\d{2}(:\d{2}(\.\d+)?)?)?$`}, nil
	case codec.ScalarDuration:
		return &js.Schema{Type: "string", Pattern: `^\d+:[0-5]\d:[0-5]\d$`}, nil
	case codec.ScalarTimestamp:
		return &js.Schema{Type: "string", Format: "date-time", Pattern: `Z$`}, nil
	}
	return &js.Schema{Type: "string"}, nil
}
