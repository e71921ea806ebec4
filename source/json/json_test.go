package json_test

import (
	"context"
	"testing"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/record"
	jsondrv "github.com/reoring/goarr/source/json"
)

type sample struct {
	ID    int64    `json:"id"`
	Ratio float64  `json:"ratio"`
	Tags  []string `json:"tags"`
}

func TestDriver_DecodesRecords(t *testing.T) {
	goarr.SetJSONDriver(jsondrv.Driver())
	t.Cleanup(goarr.UseDefaultJSONDriver)
	if goarr.CurrentJSONDriver().Name() != "encoding/json" {
		t.Fatalf("expected encoding/json driver")
	}

	v, err := record.DecodeJSON[sample](context.Background(), []byte(`{"id":9007199254740993,"ratio":0.5,"tags":["a"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != 9007199254740993 || v.Ratio != 0.5 || len(v.Tags) != 1 {
		t.Fatalf("unexpected value: %+v", v)
	}

	b, err := record.EncodeJSON(context.Background(), v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `{"id":9007199254740993,"ratio":0.5,"tags":["a"]}` {
		t.Fatalf("unexpected encoding: %s", b)
	}
}

func TestDriver_RejectsTrailingData(t *testing.T) {
	if _, err := jsondrv.Driver().Unmarshal([]byte(`{} {}`)); err == nil {
		t.Fatalf("expected error for trailing value")
	}
}
