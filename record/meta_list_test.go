package record_test

import (
	"context"
	"reflect"
	"testing"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/record"
)

type entry struct {
	ID   int     `json:"id"`
	Note *string `json:"note"`
	Tags []int   `json:"tags" goarr:"default"`
}

func TestDecodeListWithMeta_RoundTrip(t *testing.T) {
	ctx := context.Background()
	wire := []any{
		decodeWire(t, `{"id":1}`),
		decodeWire(t, `{"id":2,"note":null,"tags":[]}`),
	}
	dv, err := record.DecodeListWithMeta[entry](ctx, wire)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dv.Value) != 2 || dv.Value[0].Tags == nil {
		t.Fatalf("unexpected value: %+v", dv.Value)
	}
	if dv.Presence["/0/tags"]&goarr.PresenceDefaultApplied == 0 || dv.Presence["/1/note"]&goarr.PresenceWasNull == 0 {
		t.Fatalf("unexpected presence: %v", dv.Presence)
	}
	if dv.Presence.Seen("/0/note") || !dv.Presence.Seen("/1") {
		t.Fatalf("unexpected presence: %v", dv.Presence)
	}

	got, err := record.EncodeListPreserving(ctx, dv)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []any{
		map[string]any{"id": int64(1)},
		map[string]any{"id": int64(2), "note": nil, "tags": []any{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	canonical, _ := record.EncodeList(ctx, dv.Value)
	if _, ok := canonical[0].(map[string]any)["note"]; !ok {
		t.Fatalf("canonical encode must emit every key")
	}
}

func TestDecodeListWithMeta_IssuesAreIndexed(t *testing.T) {
	wire := []any{decodeWire(t, `{"id":"x"}`), decodeWire(t, `{}`)}
	_, err := record.DecodeListWithMeta[entry](goarr.WithCollect(context.Background(), true), wire)
	iss, ok := goarr.AsIssues(err)
	if !ok || len(iss) != 2 || iss[0].Path != "/0/id" || iss[1].Path != "/1/id" {
		t.Fatalf("expected issues at /0/id and /1/id, got %v", err)
	}
	if _, err := record.DecodeListWithMeta[entry](context.Background(), map[string]any{}); !goarr.HasCode(err, goarr.CodeInvalidType) {
		t.Fatalf("expected invalid_type for a non-array, got %v", err)
	}
	if _, err := record.EncodeListPreserving(context.Background(), goarr.Decoded[[]entry]{}); err != goarr.ErrEncodePreserveRequiresPresence {
		t.Fatalf("expected presence error, got %v", err)
	}
}
