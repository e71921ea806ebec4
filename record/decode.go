package record

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/i18n"
)

// Decode converts an untyped wire mapping (as produced by the JSON driver)
// into a T. Decoding stops at the first issue unless the context was built
// with goarr.WithCollect.
func Decode[T any](ctx context.Context, wire any) (T, error) {
	var out T
	desc, err := DescriptorOf[T]()
	if err != nil {
		return out, err
	}
	d := newDecoder(ctx)
	if err := ctx.Err(); err != nil {
		return out, err
	}
	d.decodeRecord(desc, wire, goarr.Root(), reflect.ValueOf(&out).Elem())
	if len(d.issues) > 0 {
		var zero T
		return zero, d.issues
	}
	return out, nil
}

// DecodeList decodes a wire array of records, preserving order. The result is
// never nil.
func DecodeList[T any](ctx context.Context, wire any) ([]T, error) {
	desc, err := DescriptorOf[T]()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	arr, ok := wire.([]any)
	if !ok {
		return nil, goarr.Issues{{
			Path:    "/",
			Code:    goarr.CodeInvalidType,
			Message: fmt.Sprintf("expected array of %s, got %s", desc.Name, codec.DescribeWire(wire)),
			Record:  desc.Name,
			Value:   wire,
		}}
	}
	d := newDecoder(ctx)
	out := make([]T, len(arr))
	for i, el := range arr {
		if !d.decodeRecord(desc, el, goarr.Root().Index(i), reflect.ValueOf(&out[i]).Elem()) {
			break
		}
	}
	if len(d.issues) > 0 {
		return nil, d.issues
	}
	return out, nil
}

// DecodeJSON parses raw JSON through the current JSON driver and decodes it.
// Duplicate keys are rejected unless goarr.WithAllowDuplicateKeys is set.
func DecodeJSON[T any](ctx context.Context, data []byte) (T, error) {
	wire, err := goarr.UnmarshalWire(data, goarr.IsAllowDuplicateKeys(ctx))
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](ctx, wire)
}

// DecodeListJSON is DecodeJSON for a top-level array.
func DecodeListJSON[T any](ctx context.Context, data []byte) ([]T, error) {
	wire, err := goarr.UnmarshalWire(data, goarr.IsAllowDuplicateKeys(ctx))
	if err != nil {
		return nil, err
	}
	return DecodeList[T](ctx, wire)
}

// DecodeWithMeta decodes like Decode and also records which keys were present,
// null, or filled from a default.
func DecodeWithMeta[T any](ctx context.Context, wire any) (goarr.Decoded[T], error) {
	var out goarr.Decoded[T]
	desc, err := DescriptorOf[T]()
	if err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	d := newDecoder(ctx)
	d.presence = goarr.PresenceMap{"/": goarr.PresenceSeen}
	d.decodeRecord(desc, wire, goarr.Root(), reflect.ValueOf(&out.Value).Elem())
	if len(d.issues) > 0 {
		return goarr.Decoded[T]{}, d.issues
	}
	out.Presence = d.presence
	return out, nil
}

// DecodeInto decodes wire into a new value of desc's type and returns a
// pointer to it. It serves callers that pick the record type at run time.
func DecodeInto(ctx context.Context, desc *Descriptor, wire any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ptr := reflect.New(desc.Type)
	d := newDecoder(ctx)
	d.decodeRecord(desc, wire, goarr.Root(), ptr.Elem())
	if len(d.issues) > 0 {
		return nil, d.issues
	}
	return ptr.Interface(), nil
}

type decoder struct {
	collect  bool
	issues   goarr.Issues
	presence goarr.PresenceMap
}

func newDecoder(ctx context.Context) *decoder {
	return &decoder{collect: goarr.IsCollect(ctx)}
}

// report records an issue and reports whether decoding should continue.
func (d *decoder) report(it goarr.Issue) bool {
	d.issues = append(d.issues, it)
	return d.collect
}

// reportErr attributes a codec error to the field being decoded.
func (d *decoder) reportErr(err error, path goarr.PathRef, desc *Descriptor, f *Field, wire any) bool {
	iss, ok := goarr.AsIssues(err)
	if !ok {
		iss = goarr.Issues{{Path: "/", Code: goarr.CodeInvalidType, Message: err.Error(), Cause: err}}
	}
	cont := true
	for _, it := range goarr.RebaseIssues(path, iss) {
		it.Record, it.Field, it.Type = desc.Name, f.Name, fieldTypeName(f)
		if it.Value == nil {
			it.Value = wire
		}
		cont = d.report(it)
	}
	return cont
}

func (d *decoder) fieldIssue(path goarr.PathRef, code string, desc *Descriptor, f *Field, wire any, msg string) bool {
	it := path.Issue(code, msg)
	it.Record, it.Field, it.Type, it.Value = desc.Name, f.Name, fieldTypeName(f), wire
	return d.report(it)
}

func (d *decoder) mark(path goarr.PathRef, p goarr.Presence) {
	d.presence.Mark(path.Pointer(), p)
}

func (d *decoder) decodeRecord(desc *Descriptor, wire any, path goarr.PathRef, out reflect.Value) bool {
	obj, ok := wire.(map[string]any)
	if !ok {
		it := path.Issue(goarr.CodeInvalidType, fmt.Sprintf("expected object for %s, got %s", desc.Name, codec.DescribeWire(wire)))
		it.Record, it.Value = desc.Name, wire
		return d.report(it)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		if _, known := desc.byKey[k]; !known {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		it := path.Field(k).Issue(goarr.CodeUnknownKey, i18n.T(goarr.CodeUnknownKey, map[string]string{"key": k}))
		it.Record, it.Field, it.Value = desc.Name, k, obj[k]
		if !d.report(it) {
			return false
		}
	}

	for i := range desc.Fields {
		f := &desc.Fields[i]
		fp := path.Field(f.Name)
		fv := out.FieldByIndex(f.Index)
		v, present := obj[f.Name]
		if !present {
			switch {
			case f.HasDefault:
				if f.Type.Kind == KindTuple {
					fv.Set(reflect.MakeSlice(f.Type.GoType, 0, 0))
				}
				d.mark(fp, goarr.PresenceDefaultApplied)
			case f.Optional:
			default:
				if !d.fieldIssue(fp, goarr.CodeRequired, desc, f, nil, i18n.T(goarr.CodeRequired, map[string]string{"key": f.Name})) {
					return false
				}
			}
			continue
		}
		d.mark(fp, goarr.PresenceSeen)
		if v == nil {
			d.mark(fp, goarr.PresenceWasNull)
			if f.Optional {
				continue
			}
			if !d.fieldIssue(fp, goarr.CodeInvalidType, desc, f, nil, "null for non-optional field") {
				return false
			}
			continue
		}
		if !f.Optional {
			if !d.decodeValue(desc, f, &f.Type, v, fp, fv) {
				return false
			}
			continue
		}
		// The service sends {} for "no data" on optional sub-records.
		if m, ok := v.(map[string]any); ok && len(m) == 0 && f.Type.Kind == KindRecord {
			continue
		}
		ptr := reflect.New(f.Type.GoType)
		if !d.decodeValue(desc, f, &f.Type, v, fp, ptr.Elem()) {
			return false
		}
		fv.Set(ptr)
	}
	return true
}

func (d *decoder) decodeValue(desc *Descriptor, f *Field, td *TypeDesc, v any, path goarr.PathRef, out reflect.Value) bool {
	switch td.Kind {
	case KindScalar:
		val, err := codec.DecodeScalar(td.Scalar, v)
		if err != nil {
			return d.reportErr(err, path, desc, f, v)
		}
		return d.setScalar(desc, f, val, v, path, out)
	case KindEnum:
		s, ok := v.(string)
		if !ok {
			return d.fieldIssue(path, goarr.CodeInvalidType, desc, f, v, "expected enum string, got "+codec.DescribeWire(v))
		}
		n, err := td.Enum.DecodeWire(s)
		if err != nil {
			return d.reportErr(err, path, desc, f, v)
		}
		out.SetInt(n)
	case KindRecord:
		sub, err := Describe(td.GoType)
		if err != nil {
			return d.reportErr(err, path, desc, f, v)
		}
		return d.decodeRecord(sub, v, path, out)
	case KindTuple:
		arr, ok := v.([]any)
		if !ok {
			return d.fieldIssue(path, goarr.CodeInvalidType, desc, f, v, "expected array, got "+codec.DescribeWire(v))
		}
		s := reflect.MakeSlice(td.GoType, len(arr), len(arr))
		for i, el := range arr {
			ep := path.Index(i)
			d.mark(ep, goarr.PresenceSeen)
			if el == nil {
				if !d.fieldIssue(ep, goarr.CodeInvalidType, desc, f, nil, "null tuple element") {
					return false
				}
				continue
			}
			if !d.decodeValue(desc, f, td.Elem, el, ep, s.Index(i)) {
				return false
			}
		}
		out.Set(s)
	}
	return true
}

func (d *decoder) setScalar(desc *Descriptor, f *Field, val, wire any, path goarr.PathRef, out reflect.Value) bool {
	switch x := val.(type) {
	case bool:
		out.SetBool(x)
	case int64:
		if out.OverflowInt(x) {
			return d.fieldIssue(path, goarr.CodeInvalidType, desc, f, wire, fmt.Sprintf("%d overflows %s", x, out.Type()))
		}
		out.SetInt(x)
	case float64:
		out.SetFloat(x)
	case string:
		out.SetString(x)
	default:
		out.Set(reflect.ValueOf(val))
	}
	return true
}

func fieldTypeName(f *Field) string {
	t := f.Type.GoType.String()
	if f.Optional {
		return "*" + t
	}
	return t
}
