package radarr

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/record"
	"github.com/reoring/goarr/transport"
)

func serveFixture(t *testing.T, name string) http.HandlerFunc {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	}
}

func newTestClient(t *testing.T, r http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)
	port, _ := strconv.Atoi(u.Port())
	c, err := New(transport.Config{Host: u.Hostname(), Port: port, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestWeek(t *testing.T) {
	cases := []struct {
		day, start, end codec.Date
	}{
		{codec.Date{Year: 2021, Month: 12, Day: 15}, codec.Date{Year: 2021, Month: 12, Day: 13}, codec.Date{Year: 2021, Month: 12, Day: 19}},
		{codec.Date{Year: 2021, Month: 12, Day: 13}, codec.Date{Year: 2021, Month: 12, Day: 13}, codec.Date{Year: 2021, Month: 12, Day: 19}},
		{codec.Date{Year: 2022, Month: 1, Day: 2}, codec.Date{Year: 2021, Month: 12, Day: 27}, codec.Date{Year: 2022, Month: 1, Day: 2}},
	}
	for _, tc := range cases {
		s, e := Week(tc.day)
		if s != tc.start || e != tc.end {
			t.Fatalf("%v: expected %v..%v, got %v..%v", tc.day, tc.start, tc.end, s, e)
		}
	}
}

func TestCalendar_DefaultsToCurrentWeek(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v3/calendar", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("start") != "2021-12-13" || q.Get("end") != "2021-12-19" {
			t.Errorf("unexpected range: %s", req.URL.RawQuery)
		}
		serveFixture(t, "movies.json")(w, req)
	})
	c := newTestClient(t, r)
	c.now = func() time.Time { return time.Date(2021, 12, 15, 20, 0, 0, 0, time.UTC) }

	movies, err := c.Calendar(context.Background(), codec.Date{}, codec.Date{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 || movies[0].Collection == nil || movies[0].MovieFile != nil {
		t.Fatalf("unexpected movies: %+v", movies)
	}
}

func TestQueue_ReadsPagedRecords(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v3/queue", serveFixture(t, "queue.json"))
	c := newTestClient(t, r)

	items, err := c.Queue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.ID != 1065103901 || it.MovieID != 2008 || it.SizeLeft != 8478892583 || *it.TrackedDownloadStatus != "ok" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if *it.TimeLeft != 8*time.Minute+11*time.Second {
		t.Fatalf("expected 8m11s, got %v", *it.TimeLeft)
	}
	if !it.EstimatedCompletionTime.Equal(time.Date(2021, 12, 15, 12, 0, 39, 0, time.UTC)) {
		t.Fatalf("unexpected eta: %v", it.EstimatedCompletionTime)
	}

	p, err := c.QueuePage(context.Background(), arr.PageQuery[SortKey]{SortKey: SortTimeLeft})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SortKey != SortTimeLeft || p.TotalRecords != 1 {
		t.Fatalf("unexpected page group: %+v", p.Page)
	}
}

func TestMovies(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v3/movie", serveFixture(t, "movies.json"))
	c := newTestClient(t, r)

	movies, err := c.Movies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	heat := movies[1]
	if heat.MovieFile == nil || *heat.MovieFile.ReleaseGroup != "AMIABLE" || heat.Images == nil || heat.InCinemas != nil {
		t.Fatalf("unexpected movie: %+v", heat)
	}
	if got := heat.Added.Nanosecond() / 1000; got != 533333 {
		t.Fatalf("expected 533333us, got %d", got)
	}
	if *movies[0].Images[0].RemoteURL == "" || movies[0].Ratings.Value != 6.9 {
		t.Fatalf("unexpected nested records: %+v", movies[0])
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(transport.Config{Host: "films.local"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, ok := c.r.(*transport.Client)
	if !ok {
		t.Fatalf("expected an HTTP transport")
	}
	if got := tc.BaseURL().String(); got != "http://films.local:7878/api/v3/" {
		t.Fatalf("unexpected base url: %s", got)
	}
}

func TestQueuePage_SortKeyIsEnum(t *testing.T) {
	d, ok := record.Lookup("radarr.QueuePage")
	if !ok {
		t.Fatalf("expected radarr.QueuePage to be registered")
	}
	if f, _ := d.Field("sortKey"); f.Type.Kind != record.KindEnum {
		t.Fatalf("expected enum sortKey, got %+v", f.Type)
	}
}
