package record

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/codec"
)

// Encode converts a record (or pointer to one) into a JSON-safe wire mapping.
// Nil optionals become null unless tagged omitempty; tuples are always
// emitted, nil as [].
func Encode(ctx context.Context, v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.New("record: encode of nil pointer")
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, errors.New("record: encode of nil value")
	}
	desc, err := Describe(rv.Type())
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return (&encoder{}).encodeRecord(desc, rv, goarr.Root())
}

// EncodeList encodes each record in order. The result is never nil.
func EncodeList[T any](ctx context.Context, vs []T) ([]any, error) {
	out := make([]any, 0, len(vs))
	for i := range vs {
		m, err := Encode(ctx, &vs[i])
		if err != nil {
			if iss, ok := goarr.AsIssues(err); ok {
				return nil, goarr.RebaseIssues(goarr.Root().Index(i), iss)
			}
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// EncodeJSON encodes v and marshals the mapping with the current JSON driver.
func EncodeJSON(ctx context.Context, v any) ([]byte, error) {
	m, err := Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return goarr.CurrentJSONDriver().Marshal(m)
}

// EncodePreserving encodes a value obtained from DecodeWithMeta, leaving out
// optional or defaulted keys that were absent on the wire and are still
// empty. Everything else encodes as in Encode.
func EncodePreserving[T any](ctx context.Context, dv goarr.Decoded[T]) (map[string]any, error) {
	if dv.Presence == nil {
		return nil, goarr.ErrEncodePreserveRequiresPresence
	}
	desc, err := DescriptorOf[T]()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return (&encoder{presence: dv.Presence}).encodeRecord(desc, reflect.ValueOf(&dv.Value).Elem(), goarr.Root())
}

// EncodeWithMode dispatches to Encode or EncodePreserving.
func EncodeWithMode[T any](ctx context.Context, dv goarr.Decoded[T], mode goarr.EncodeMode) (map[string]any, error) {
	if mode == goarr.EncodePreserve {
		return EncodePreserving(ctx, dv)
	}
	return Encode(ctx, &dv.Value)
}

type encoder struct {
	presence goarr.PresenceMap
}

func (e *encoder) encodeRecord(desc *Descriptor, rv reflect.Value, path goarr.PathRef) (map[string]any, error) {
	out := make(map[string]any, len(desc.Fields))
	for i := range desc.Fields {
		f := &desc.Fields[i]
		fv := rv.FieldByIndex(f.Index)
		fp := path.Field(f.Name)
		if e.presence != nil && (f.Optional || f.HasDefault) && !e.presence.Seen(fp.Pointer()) && isEmpty(fv) {
			continue
		}
		if f.Optional {
			if fv.IsNil() {
				if !f.OmitEmpty || e.presence[fp.Pointer()]&goarr.PresenceWasNull != 0 {
					out[f.Name] = nil
				}
				continue
			}
			fv = fv.Elem()
		} else if f.OmitEmpty && isEmpty(fv) {
			continue
		}
		w, err := e.encodeValue(desc, f, &f.Type, fv, fp)
		if err != nil {
			return nil, err
		}
		if f.Optional && f.Type.Kind == KindRecord {
			if m, ok := w.(map[string]any); ok && len(m) == 0 {
				if err := keepPresent(f.Type.GoType, m); err != nil {
					return nil, err
				}
			}
		}
		out[f.Name] = w
	}
	return out, nil
}

// keepPresent fills an empty encoding of a present optional sub-record with
// one explicit key, since {} decodes back to nil.
func keepPresent(t reflect.Type, m map[string]any) error {
	sub, err := Describe(t)
	if err != nil {
		return err
	}
	for i := range sub.Fields {
		f := &sub.Fields[i]
		switch {
		case f.Optional:
			m[f.Name] = nil
			return nil
		case f.HasDefault && f.Type.Kind == KindTuple:
			m[f.Name] = []any{}
			return nil
		}
	}
	return nil
}

func (e *encoder) encodeValue(desc *Descriptor, f *Field, td *TypeDesc, v reflect.Value, path goarr.PathRef) (any, error) {
	switch td.Kind {
	case KindScalar:
		w, err := codec.EncodeScalar(td.Scalar, nativeScalar(td.Scalar, v))
		if err != nil {
			return nil, encodeIssue(err, path, desc, f, v)
		}
		return w, nil
	case KindEnum:
		s, err := td.Enum.EncodeWire(v.Int())
		if err != nil {
			return nil, encodeIssue(err, path, desc, f, v)
		}
		return s, nil
	case KindRecord:
		sub, err := Describe(td.GoType)
		if err != nil {
			return nil, err
		}
		return e.encodeRecord(sub, v, path)
	case KindTuple:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			w, err := e.encodeValue(desc, f, td.Elem, v.Index(i), path.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	}
	return nil, fmt.Errorf("record: %s.%s has no declared kind", desc.Name, f.GoName)
}

// nativeScalar normalizes a reflected scalar to the canonical value expected
// by codec.EncodeScalar.
func nativeScalar(k codec.ScalarKind, v reflect.Value) any {
	switch k {
	case codec.ScalarBool:
		return v.Bool()
	case codec.ScalarInt:
		return v.Int()
	case codec.ScalarFloat:
		return v.Float()
	case codec.ScalarString:
		return v.String()
	}
	return v.Interface()
}

func encodeIssue(err error, path goarr.PathRef, desc *Descriptor, f *Field, v reflect.Value) error {
	iss, ok := goarr.AsIssues(err)
	if !ok {
		iss = goarr.Issues{{Path: "/", Code: goarr.CodeInvalidType, Message: err.Error(), Cause: err}}
	}
	iss = goarr.RebaseIssues(path, iss)
	for i := range iss {
		iss[i].Record, iss[i].Field, iss[i].Type = desc.Name, f.Name, fieldTypeName(f)
		if iss[i].Value == nil && v.CanInterface() {
			iss[i].Value = v.Interface()
		}
	}
	return iss
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return v.Len() == 0
	case reflect.Pointer:
		return v.IsNil()
	}
	return v.IsZero()
}
