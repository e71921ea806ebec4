package codec

import (
	"fmt"
	"math"
	"reflect"
	"time"

	goarr "github.com/reoring/goarr"
)

// ScalarKind identifies a leaf wire type understood by the decoder.
type ScalarKind int

const (
	ScalarInvalid ScalarKind = iota
	ScalarBool
	ScalarInt
	ScalarFloat
	ScalarString
	ScalarDate
	ScalarTime
	ScalarDuration
	ScalarTimestamp
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarBool:
		return "bool"
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarString:
		return "string"
	case ScalarDate:
		return "date"
	case ScalarTime:
		return "time"
	case ScalarDuration:
		return "duration"
	case ScalarTimestamp:
		return "timestamp"
	}
	return "invalid"
}

var (
	typeTime      = reflect.TypeOf(time.Time{})
	typeDuration  = reflect.TypeOf(time.Duration(0))
	typeDate      = reflect.TypeOf(Date{})
	typeTimeOfDay = reflect.TypeOf(TimeOfDay{})
)

// ScalarKindOf maps a Go type to its scalar kind. Enum types must be checked
// with LookupEnum first since they share the int kind.
func ScalarKindOf(t reflect.Type) (ScalarKind, bool) {
	switch t {
	case typeTime:
		return ScalarTimestamp, true
	case typeDuration:
		return ScalarDuration, true
	case typeDate:
		return ScalarDate, true
	case typeTimeOfDay:
		return ScalarTime, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return ScalarBool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ScalarInt, true
	case reflect.Float32, reflect.Float64:
		return ScalarFloat, true
	case reflect.String:
		return ScalarString, true
	}
	return ScalarInvalid, false
}

// number is satisfied by json.Number and goccy's Number alike.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// DecodeScalar converts an untyped wire value into the canonical Go value for
// kind: bool, int64, float64, string, Date, TimeOfDay, time.Duration or
// time.Time. Failures are Issues rooted at "/".
func DecodeScalar(kind ScalarKind, wire any) (any, error) {
	switch kind {
	case ScalarBool:
		if b, ok := wire.(bool); ok {
			return b, nil
		}
	case ScalarInt:
		if n, ok := toInt(wire); ok {
			return n, nil
		}
	case ScalarFloat:
		if f, ok := toFloat(wire); ok {
			return f, nil
		}
	case ScalarString:
		if s, ok := wire.(string); ok {
			return s, nil
		}
	case ScalarDate, ScalarTime, ScalarDuration, ScalarTimestamp:
		s, ok := wire.(string)
		if !ok {
			break
		}
		switch kind {
		case ScalarDate:
			return ParseDate(s)
		case ScalarTime:
			return ParseTimeOfDay(s)
		case ScalarDuration:
			return ParseDuration(s)
		default:
			return ParseTimestamp(s)
		}
	default:
		return nil, fmt.Errorf("codec: unsupported scalar kind %v", kind)
	}
	return nil, goarr.Issues{{
		Path:    "/",
		Code:    goarr.CodeInvalidType,
		Message: fmt.Sprintf("expected %s, got %s", wireName(kind), DescribeWire(wire)),
		Value:   wire,
	}}
}

// EncodeScalar converts a canonical Go value (as returned by DecodeScalar)
// into its wire form.
func EncodeScalar(kind ScalarKind, v any) (any, error) {
	switch kind {
	case ScalarBool, ScalarString:
		return v, nil
	case ScalarInt:
		if n, ok := toInt(v); ok {
			return n, nil
		}
	case ScalarFloat:
		if f, ok := toFloat(v); ok {
			return f, nil
		}
	case ScalarDate:
		if d, ok := v.(Date); ok {
			return d.String(), nil
		}
	case ScalarTime:
		if t, ok := v.(TimeOfDay); ok {
			return t.String(), nil
		}
	case ScalarDuration:
		if d, ok := v.(time.Duration); ok {
			return FormatDuration(d)
		}
	case ScalarTimestamp:
		if t, ok := v.(time.Time); ok {
			return FormatTimestamp(t), nil
		}
	}
	return nil, fmt.Errorf("codec: cannot encode %T as %v", v, kind)
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		return integral(n)
	}
	return 0, false
}

func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func wireName(k ScalarKind) string {
	switch k {
	case ScalarBool:
		return "boolean"
	case ScalarInt:
		return "integer"
	case ScalarFloat:
		return "number"
	}
	return "string"
}

// DescribeWire names the JSON type of an untyped wire value.
func DescribeWire(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case number, float64, float32, int, int64, int32:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
