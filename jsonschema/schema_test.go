package jsonschema_test

import (
	"encoding/json"
	"testing"

	"github.com/reoring/goarr/jsonschema"
)

func TestNullable(t *testing.T) {
	s := jsonschema.Nullable(&jsonschema.Schema{Type: "integer"})
	if len(s.OneOf) != 2 || s.OneOf[0].Type != "integer" || s.OneOf[1].Type != "null" {
		t.Fatalf("expected integer|null, got %+v", s)
	}
}

func TestDocument_DoesNotMutate(t *testing.T) {
	in := &jsonschema.Schema{Title: "sonarr.Tag", Type: "object"}
	doc := jsonschema.Document(in)
	if in.Dialect != "" {
		t.Fatalf("expected input to stay untouched, got %q", in.Dialect)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"$schema":"` + jsonschema.Draft + `","title":"sonarr.Tag","type":"object"}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}
}
