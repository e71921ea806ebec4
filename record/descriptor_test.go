package record_test

import (
	"reflect"
	"testing"
	"time"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/record"
)

type withMap struct {
	M map[string]int `json:"m"`
}

type withOptionalTuple struct {
	T *[]int `json:"t"`
}

type withTupleOfOptionals struct {
	T []*Inner `json:"t"`
}

type withInterface struct {
	V any `json:"v"`
}

type withDuplicateKey struct {
	A int `json:"x"`
	B int `goarr:"name=x"`
}

type withBadNested struct {
	N withMap `json:"n"`
}

type withUnsigned struct {
	U uint `json:"u"`
}

type withRequiredOmitEmpty struct {
	N int `json:"n,omitempty"`
}

type unregisteredState int

func (s unregisteredState) String() string { return "state" }

type withUnregisteredEnum struct {
	S unregisteredState `json:"s"`
}

type withOmittableFields struct {
	N    *int  `json:"n,omitempty"`
	Tags []int `json:"tags,omitempty" goarr:"default"`
	Span time.Duration
}

func TestDescribe_RejectsMalformedDeclarations(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeOf(withMap{}),
		reflect.TypeOf(withOptionalTuple{}),
		reflect.TypeOf(withTupleOfOptionals{}),
		reflect.TypeOf(withInterface{}),
		reflect.TypeOf(withDuplicateKey{}),
		reflect.TypeOf(withBadNested{}),
		reflect.TypeOf(withUnsigned{}),
		reflect.TypeOf(withRequiredOmitEmpty{}),
		reflect.TypeOf(withUnregisteredEnum{}),
		reflect.TypeOf(0),
	} {
		if _, err := record.Describe(typ); !goarr.IsDeclarationError(err) {
			t.Fatalf("%v: expected declaration error, got %v", typ, err)
		}
	}
}

func TestDescribe_OmitEmptyOnOptionalAndDefault(t *testing.T) {
	d, err := record.DescriptorOf[withOmittableFields]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f, _ := d.Field("Span"); f.Type.Kind != record.KindScalar || f.Type.Scalar != codec.ScalarDuration {
		t.Fatalf("time.Duration must stay a scalar, got %+v", f.Type)
	}
}

func TestDescribe_FieldTable(t *testing.T) {
	d, err := record.DescriptorOf[Outer]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Fields) != 12 || d.Fields[0].Name != "title" || d.Fields[11].Name != "note" {
		t.Fatalf("unexpected field order: %+v", d.Fields)
	}
	cases := []struct {
		key      string
		kind     record.Kind
		optional bool
	}{
		{"title", record.KindScalar, false},
		{"runtime", record.KindScalar, true},
		{"level", record.KindEnum, false},
		{"inner", record.KindRecord, true},
		{"items", record.KindTuple, false},
	}
	for _, tc := range cases {
		f, ok := d.Field(tc.key)
		if !ok {
			t.Fatalf("missing field %s", tc.key)
		}
		if f.Type.Kind != tc.kind || f.Optional != tc.optional {
			t.Fatalf("%s: expected %v optional=%v, got %v optional=%v", tc.key, tc.kind, tc.optional, f.Type.Kind, f.Optional)
		}
	}
	items, _ := d.Field("items")
	if items.Type.Elem == nil || items.Type.Elem.Kind != record.KindRecord {
		t.Fatalf("items must be a tuple of records")
	}
	tags, _ := d.Field("tags")
	if !tags.HasDefault {
		t.Fatalf("tags must carry a default")
	}
	note, _ := d.Field("note")
	if !note.OmitEmpty {
		t.Fatalf("note must be omitempty")
	}
}

func TestDescribe_IsCached(t *testing.T) {
	a, err := record.DescriptorOf[Inner]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := record.Describe(reflect.TypeOf(Inner{}))
	if a != b {
		t.Fatalf("expected the same cached descriptor")
	}
}

type Node struct {
	Name     string `json:"name"`
	Children []Node `json:"children" goarr:"default"`
}

func TestDescribe_SelfReference(t *testing.T) {
	if _, err := record.DescriptorOf[Node](); err != nil {
		t.Fatalf("self-referencing tuple must be describable: %v", err)
	}
}

type registered struct {
	ID int `json:"id"`
}

var _ = record.MustRegister[registered]()

func TestRegistry(t *testing.T) {
	d, ok := record.Lookup("record_test.registered")
	if !ok || d.Type != reflect.TypeOf(registered{}) {
		t.Fatalf("expected registered record, got %v", d)
	}
	found := false
	for _, n := range record.Registered() {
		if n == "record_test.registered" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Registered() must list record_test.registered")
	}
	if _, ok := record.Lookup("record_test.nope"); ok {
		t.Fatalf("unexpected lookup hit")
	}
}

func TestMustRegister_PanicsOnBadDeclaration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	record.MustRegister[withMap]()
}
