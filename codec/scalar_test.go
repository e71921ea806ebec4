package codec

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	goarr "github.com/reoring/goarr"
)

func TestScalarKindOf(t *testing.T) {
	type label string
	cases := []struct {
		v    any
		want ScalarKind
	}{
		{true, ScalarBool},
		{int64(1), ScalarInt},
		{1, ScalarInt},
		{1.5, ScalarFloat},
		{"x", ScalarString},
		{label("x"), ScalarString},
		{time.Time{}, ScalarTimestamp},
		{time.Second, ScalarDuration},
		{Date{}, ScalarDate},
		{TimeOfDay{}, ScalarTime},
	}
	for _, tc := range cases {
		got, ok := ScalarKindOf(reflect.TypeOf(tc.v))
		if !ok || got != tc.want {
			t.Fatalf("%T: expected %v, got %v", tc.v, tc.want, got)
		}
	}
	if _, ok := ScalarKindOf(reflect.TypeOf(struct{}{})); ok {
		t.Fatalf("struct must not be a scalar")
	}
}

func TestDecodeScalar_Numbers(t *testing.T) {
	v, err := DecodeScalar(ScalarInt, json.Number("42"))
	if err != nil || v != int64(42) {
		t.Fatalf("expected 42, got %v err=%v", v, err)
	}
	v, err = DecodeScalar(ScalarInt, json.Number("3.0"))
	if err != nil || v != int64(3) {
		t.Fatalf("expected integral float to decode, got %v err=%v", v, err)
	}
	if _, err := DecodeScalar(ScalarInt, json.Number("3.5")); !goarr.HasCode(err, goarr.CodeInvalidType) {
		t.Fatalf("expected invalid_type for 3.5, got %v", err)
	}
	v, err = DecodeScalar(ScalarFloat, json.Number("1.25"))
	if err != nil || v != 1.25 {
		t.Fatalf("expected 1.25, got %v err=%v", v, err)
	}
	v, err = DecodeScalar(ScalarFloat, float64(2))
	if err != nil || v != 2.0 {
		t.Fatalf("expected 2, got %v err=%v", v, err)
	}
}

func TestDecodeScalar_TypeMismatch(t *testing.T) {
	cases := []struct {
		kind ScalarKind
		wire any
	}{
		{ScalarBool, "true"},
		{ScalarString, json.Number("1")},
		{ScalarInt, "1"},
		{ScalarTimestamp, json.Number("1")},
		{ScalarDate, nil},
	}
	for _, tc := range cases {
		_, err := DecodeScalar(tc.kind, tc.wire)
		if !goarr.HasCode(err, goarr.CodeInvalidType) {
			t.Fatalf("%v <- %#v: expected invalid_type, got %v", tc.kind, tc.wire, err)
		}
	}
}

func TestEncodeScalar(t *testing.T) {
	ts := time.Date(2020, 6, 5, 13, 38, 45, 0, time.UTC)
	cases := []struct {
		kind ScalarKind
		in   any
		want any
	}{
		{ScalarInt, int64(7), int64(7)},
		{ScalarFloat, 2.5, 2.5},
		{ScalarTimestamp, ts, "2020-06-05T13:38:45Z"},
		{ScalarDate, Date{2020, time.June, 5}, "2020-06-05"},
		{ScalarDuration, 61 * time.Second, "00:01:01"},
		{ScalarTime, TimeOfDay{Hour: 9}, "09:00:00"},
	}
	for _, tc := range cases {
		got, err := EncodeScalar(tc.kind, tc.in)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.kind, err)
		}
		if got != tc.want {
			t.Fatalf("%v: expected %#v, got %#v", tc.kind, tc.want, got)
		}
	}
}
