package codec

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	goarr "github.com/reoring/goarr"
)

// EnumCodec is the type-erased view of a registered enum used by the record
// decoder. Members travel as int64 so callers can set them through reflection.
type EnumCodec interface {
	// Type is the Go enum type.
	Type() reflect.Type
	// DecodeWire maps a wire string to its member.
	DecodeWire(s string) (int64, error)
	// EncodeWire maps a member back to its wire string.
	EncodeWire(member int64) (string, error)
	// Values lists the wire strings in sorted order.
	Values() []string
}

// EnumTable is a closed bijection between members of E and wire strings.
type EnumTable[E ~int] struct {
	typ      reflect.Type
	toWire   map[E]string
	fromWire map[string]E
	values   []string
}

var enums sync.Map // reflect.Type -> EnumCodec

// RegisterEnum declares the wire strings for E and records the table in the
// global registry so record fields of type E decode automatically. It panics
// with a *goarr.DeclarationError when two members share a wire string or a
// wire string is empty; enum tables are package-level declarations.
func RegisterEnum[E ~int](members map[E]string) *EnumTable[E] {
	t, err := NewEnum(members)
	if err != nil {
		panic(err)
	}
	enums.Store(t.typ, EnumCodec(t))
	return t
}

// NewEnum builds an EnumTable without registering it.
func NewEnum[E ~int](members map[E]string) (*EnumTable[E], error) {
	typ := reflect.TypeOf((*E)(nil)).Elem()
	t := &EnumTable[E]{
		typ:      typ,
		toWire:   make(map[E]string, len(members)),
		fromWire: make(map[string]E, len(members)),
	}
	for m, s := range members {
		if s == "" {
			return nil, &goarr.DeclarationError{Type: typ, Reason: fmt.Sprintf("member %d has an empty wire value", int(m))}
		}
		if prev, dup := t.fromWire[s]; dup {
			return nil, &goarr.DeclarationError{Type: typ, Reason: fmt.Sprintf("wire value %q used by members %d and %d", s, int(prev), int(m))}
		}
		t.toWire[m] = s
		t.fromWire[s] = m
		t.values = append(t.values, s)
	}
	sort.Strings(t.values)
	return t, nil
}

// LookupEnum returns the registered codec for t.
func LookupEnum(t reflect.Type) (EnumCodec, bool) {
	v, ok := enums.Load(t)
	if !ok {
		return nil, false
	}
	return v.(EnumCodec), true
}

// Decode maps a wire string to its member; unknown strings are invalid_enum.
func (t *EnumTable[E]) Decode(_ context.Context, s string) (E, error) {
	m, ok := t.fromWire[s]
	if !ok {
		var zero E
		return zero, t.unknown(s)
	}
	return m, nil
}

// Encode maps a member to its wire string.
func (t *EnumTable[E]) Encode(_ context.Context, m E) (string, error) {
	s, ok := t.toWire[m]
	if !ok {
		return "", goarr.Issues{{Path: "/", Code: goarr.CodeInvalidEnum, Message: fmt.Sprintf("%d is not a member of %s", int(m), t.typ), Value: int(m)}}
	}
	return s, nil
}

// Wire returns the wire string for m, or "" when m is not a member.
func (t *EnumTable[E]) Wire(m E) string { return t.toWire[m] }

func (t *EnumTable[E]) Type() reflect.Type { return t.typ }

func (t *EnumTable[E]) Values() []string { return append([]string(nil), t.values...) }

func (t *EnumTable[E]) DecodeWire(s string) (int64, error) {
	m, err := t.Decode(context.Background(), s)
	return int64(m), err
}

func (t *EnumTable[E]) EncodeWire(member int64) (string, error) {
	return t.Encode(context.Background(), E(member))
}

func (t *EnumTable[E]) unknown(s string) error {
	return goarr.Issues{{
		Path:    "/",
		Code:    goarr.CodeInvalidEnum,
		Message: fmt.Sprintf("%q is not a %s value", s, t.typ.Name()),
		Value:   s,
		Params:  map[string]any{"allowed": t.Values()},
	}}
}
