package record

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/codec"
)

// Kind classifies a declared field type.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindEnum
	KindRecord
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindTuple:
		return "tuple"
	}
	return "invalid"
}

// TypeDesc describes one level of a declared type. Optionality is recorded on
// the Field because it may only wrap the outermost level.
type TypeDesc struct {
	Kind   Kind
	Scalar codec.ScalarKind // KindScalar
	Enum   codec.EnumCodec  // KindEnum
	Elem   *TypeDesc        // KindTuple
	GoType reflect.Type     // the non-pointer Go type at this level
}

// Field is a single wire key of a record.
type Field struct {
	Name       string // wire key
	GoName     string
	Index      []int // for reflect.Value.FieldByIndex; length > 1 for embedded groups
	Type       TypeDesc
	Optional   bool
	HasDefault bool
	OmitEmpty  bool
}

// Descriptor is the ordered field table of a record type.
type Descriptor struct {
	Type   reflect.Type
	Name   string
	Fields []Field
	byKey  map[string]int
}

// Field returns the field for a wire key.
func (d *Descriptor) Field(key string) (Field, bool) {
	i, ok := d.byKey[key]
	if !ok {
		return Field{}, false
	}
	return d.Fields[i], true
}

var (
	cache sync.Map // reflect.Type -> *Descriptor

	// building guards recursive construction; a type currently being built is
	// referenced by GoType only and resolved from the cache on use.
	buildMu  sync.Mutex
	building = map[reflect.Type]bool{}

	namesMu sync.RWMutex
	names   = map[string]reflect.Type{}
)

// Describe returns the cached descriptor for t, building and validating it
// (and every nested record type) on first use.
func Describe(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, &goarr.DeclarationError{Reason: "nil type"}
	}
	if d, ok := cache.Load(t); ok {
		return d.(*Descriptor), nil
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	return describeLocked(t)
}

// DescriptorOf is Describe for a type parameter.
func DescriptorOf[T any]() (*Descriptor, error) {
	return Describe(reflect.TypeOf((*T)(nil)).Elem())
}

// Register describes T and makes it addressable by its qualified name
// ("sonarr.Episode") through Lookup.
func Register[T any]() (*Descriptor, error) {
	d, err := DescriptorOf[T]()
	if err != nil {
		return nil, err
	}
	namesMu.Lock()
	names[d.Name] = d.Type
	namesMu.Unlock()
	return d, nil
}

// MustRegister is Register for package-level catalogs; it panics on a
// malformed declaration.
func MustRegister[T any]() *Descriptor {
	d, err := Register[T]()
	if err != nil {
		panic(err)
	}
	return d
}

// Lookup returns a registered record descriptor by qualified name.
func Lookup(name string) (*Descriptor, bool) {
	namesMu.RLock()
	t, ok := names[name]
	namesMu.RUnlock()
	if !ok {
		return nil, false
	}
	d, err := Describe(t)
	return d, err == nil
}

// Registered lists the qualified names of registered records, sorted.
func Registered() []string {
	namesMu.RLock()
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	namesMu.RUnlock()
	sort.Strings(out)
	return out
}

func describeLocked(t reflect.Type) (*Descriptor, error) {
	if d, ok := cache.Load(t); ok {
		return d.(*Descriptor), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, &goarr.DeclarationError{Type: t, Reason: "record must be a struct, got " + t.Kind().String()}
	}
	building[t] = true
	defer delete(building, t)

	d := &Descriptor{Type: t, Name: t.String(), byKey: map[string]int{}}
	if err := collectFields(d, t, nil); err != nil {
		return nil, err
	}
	if len(d.Fields) == 0 {
		return nil, &goarr.DeclarationError{Type: t, Reason: "record has no fields"}
	}
	for i := range d.Fields {
		if err := resolveNested(&d.Fields[i].Type); err != nil {
			return nil, err
		}
	}
	actual, _ := cache.LoadOrStore(t, d)
	return actual.(*Descriptor), nil
}

// collectFields appends the fields of t to d, flattening anonymous embedded
// structs.
func collectFields(d *Descriptor, t reflect.Type, prefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		if sf.Anonymous {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				return &goarr.DeclarationError{Type: d.Type, Field: sf.Name, Reason: "embedded field groups must not be pointers"}
			}
			if ft.Kind() == reflect.Struct {
				if err := collectFields(d, ft, index); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		key, opts := goarr.ResolveStructField(sf)
		if key == "-" {
			continue
		}
		td, optional, err := classify(sf.Type)
		if err != nil {
			return &goarr.DeclarationError{Type: d.Type, Field: sf.Name, Reason: err.Error()}
		}
		if opts.OmitEmpty && !optional && !opts.Default {
			return &goarr.DeclarationError{Type: d.Type, Field: sf.Name, Reason: "omitempty needs an optional or defaulted field; a required key cannot be left out"}
		}
		if _, dup := d.byKey[key]; dup {
			return &goarr.DeclarationError{Type: d.Type, Field: sf.Name, Reason: fmt.Sprintf("wire key %q declared twice", key)}
		}
		d.byKey[key] = len(d.Fields)
		d.Fields = append(d.Fields, Field{
			Name:       key,
			GoName:     sf.Name,
			Index:      index,
			Type:       td,
			Optional:   optional,
			HasDefault: opts.Default,
			OmitEmpty:  opts.OmitEmpty,
		})
	}
	return nil
}

// classify maps a Go field type onto the declared-type grammar: optional may
// wrap only scalar, enum or record; tuple elements may not be optional.
func classify(t reflect.Type) (TypeDesc, bool, error) {
	if t.Kind() == reflect.Pointer {
		inner := t.Elem()
		switch inner.Kind() {
		case reflect.Pointer:
			return TypeDesc{}, false, fmt.Errorf("nested optional %s", t)
		case reflect.Slice:
			return TypeDesc{}, false, fmt.Errorf("optional tuple %s is not allowed; use a defaulted tuple", t)
		}
		td, err := classifyBare(inner)
		return td, true, err
	}
	td, err := classifyBare(t)
	return td, false, err
}

func classifyBare(t reflect.Type) (TypeDesc, error) {
	if ec, ok := codec.LookupEnum(t); ok {
		return TypeDesc{Kind: KindEnum, Enum: ec, GoType: t}, nil
	}
	if enumShaped(t) {
		return TypeDesc{}, fmt.Errorf("%s looks like an enum but is not registered with codec.RegisterEnum", t)
	}
	if sk, ok := codec.ScalarKindOf(t); ok {
		return TypeDesc{Kind: KindScalar, Scalar: sk, GoType: t}, nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return TypeDesc{Kind: KindRecord, GoType: t}, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Pointer {
			return TypeDesc{}, fmt.Errorf("tuple of optionals %s is not allowed", t)
		}
		elem, err := classifyBare(t.Elem())
		if err != nil {
			return TypeDesc{}, err
		}
		return TypeDesc{Kind: KindTuple, Elem: &elem, GoType: t}, nil
	}
	return TypeDesc{}, fmt.Errorf("unsupported type %s", t)
}

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	durationType = reflect.TypeOf((*time.Duration)(nil)).Elem()
)

// enumShaped reports a named integer type with a String method, which is how
// every enum in this module is declared. Treating one as a plain int would
// put numbers on the wire.
func enumShaped(t reflect.Type) bool {
	if t.PkgPath() == "" || t == durationType || !t.Implements(stringerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// resolveNested validates nested record types, recursing through tuples.
func resolveNested(td *TypeDesc) error {
	switch td.Kind {
	case KindTuple:
		return resolveNested(td.Elem)
	case KindRecord:
		if building[td.GoType] {
			return nil
		}
		_, err := describeLocked(td.GoType)
		return err
	}
	return nil
}
