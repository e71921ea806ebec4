package filter_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/reoring/goarr/internal/filter"
	"github.com/reoring/goarr/record"
)

type download struct {
	Title    string    `json:"title"`
	Status   string    `json:"status"`
	SizeLeft int64     `json:"sizeleft"`
	Added    time.Time `json:"added"`
	Tags     []string  `json:"tags"`
	Rating   *float64  `json:"rating"`
}

var _ = record.MustRegister[download]()

func downloads() []download {
	seven := 7.5
	return []download{
		{Title: "Heat", Status: "downloading", SizeLeft: 2 << 30, Added: time.Date(2021, 12, 14, 8, 0, 0, 0, time.UTC), Tags: []string{"hd"}, Rating: &seven},
		{Title: "Ronin", Status: "queued", SizeLeft: 512, Added: time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Title: "Thief", Status: "downloading", SizeLeft: 0, Added: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), Tags: []string{"4k", "hd"}},
	}
}

func titles(ds []download) string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Title
	}
	return strings.Join(out, ",")
}

func TestSelect(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{``, "Heat,Ronin,Thief"},
		{`r.status == "downloading"`, "Heat,Thief"},
		{`r.sizeleft > 1024`, "Heat"},
		{`"hd" in r.tags`, "Heat,Thief"},
		{`r.rating != null && r.rating > 7.0`, "Heat"},
		{`timestamp(r.added) < timestamp("2020-01-01T00:00:00Z")`, "Ronin"},
		{`r.title.startsWith("Z")`, ""},
	}
	ctx := context.Background()
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			f, err := filter.Compile(tc.expr)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := filter.Select(ctx, f, downloads())
			if err != nil {
				t.Fatalf("select: %v", err)
			}
			if titles(got) != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, titles(got))
			}
		})
	}
}

func TestCompile_Rejects(t *testing.T) {
	for _, expr := range []string{`r.status ==`, `1 + 2`, `"text"`} {
		if _, err := filter.Compile(expr); err == nil {
			t.Fatalf("%s: expected compile error", expr)
		}
	}
}

func TestMatch_NonBoolResultFails(t *testing.T) {
	f, err := filter.Compile(`r.title`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := f.Match(context.Background(), downloads()[0]); err == nil || !strings.Contains(err.Error(), "not bool") {
		t.Fatalf("expected non-bool error, got %v", err)
	}
	var none *filter.Filter
	if ok, err := none.Match(context.Background(), downloads()[0]); !ok || err != nil {
		t.Fatalf("nil filter must match, got %v %v", ok, err)
	}
}
