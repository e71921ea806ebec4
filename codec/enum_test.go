package codec

import (
	"context"
	"reflect"
	"testing"

	goarr "github.com/reoring/goarr"
)

type testColor int

const (
	colorRed testColor = iota
	colorGreen
)

var testColors = RegisterEnum(map[testColor]string{
	colorRed:   "red",
	colorGreen: "green",
})

func TestEnum_DecodeEncode(t *testing.T) {
	ctx := context.Background()
	got, err := testColors.Decode(ctx, "green")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != colorGreen {
		t.Fatalf("expected colorGreen, got %v", got)
	}
	s, err := testColors.Encode(ctx, colorRed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "red" {
		t.Fatalf("expected red, got %q", s)
	}
}

func TestEnum_UnknownValue(t *testing.T) {
	_, err := testColors.Decode(context.Background(), "blue")
	iss, ok := goarr.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != goarr.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
	allowed, _ := iss[0].Params["allowed"].([]string)
	if !reflect.DeepEqual(allowed, []string{"green", "red"}) {
		t.Fatalf("unexpected allowed list: %v", allowed)
	}
	if _, err := testColors.Encode(context.Background(), testColor(9)); err == nil {
		t.Fatalf("expected error encoding a non-member")
	}
}

func TestEnum_Registry(t *testing.T) {
	ec, ok := LookupEnum(reflect.TypeOf(colorRed))
	if !ok {
		t.Fatalf("expected testColor to be registered")
	}
	n, err := ec.DecodeWire("green")
	if err != nil || testColor(n) != colorGreen {
		t.Fatalf("expected green member, got %d err=%v", n, err)
	}
	s, err := ec.EncodeWire(int64(colorRed))
	if err != nil || s != "red" {
		t.Fatalf("expected red, got %q err=%v", s, err)
	}
	if _, ok := LookupEnum(reflect.TypeOf(0)); ok {
		t.Fatalf("plain int must not be an enum")
	}
}

func TestNewEnum_DuplicateWireValue(t *testing.T) {
	_, err := NewEnum(map[testColor]string{colorRed: "x", colorGreen: "x"})
	if !goarr.IsDeclarationError(err) {
		t.Fatalf("expected declaration error, got %v", err)
	}
}
