package arr_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/transport"
)

type fakeRequester struct {
	resp *transport.Response
	err  error
	got  transport.Request
}

func (f *fakeRequester) Do(_ context.Context, req transport.Request) (*transport.Response, error) {
	f.got = req
	return f.resp, f.err
}

func jsonResponse(body string) *transport.Response {
	return &transport.Response{StatusCode: 200, ContentType: "application/json", Body: []byte(body)}
}

type item struct {
	ID    int     `json:"id"`
	Label *string `json:"label"`
}

type itemPage struct {
	arr.Page[sortKey]
	Records []item `json:"records"`
}

func TestFetch(t *testing.T) {
	f := &fakeRequester{resp: jsonResponse(`{"id":3,"label":null}`)}
	it, err := arr.Fetch[item](context.Background(), f, transport.Request{Path: "item/3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != 3 || it.Label != nil {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestFetch_DecodeErrorNamesPath(t *testing.T) {
	f := &fakeRequester{resp: jsonResponse(`{"label":"x"}`)}
	_, err := arr.Fetch[item](context.Background(), f, transport.Request{Path: "item/3"})
	if !goarr.HasCode(err, goarr.CodeRequired) {
		t.Fatalf("expected required issue, got %v", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, "decode item/3: ") {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFetch_PassesTransportErrors(t *testing.T) {
	f := &fakeRequester{err: &transport.Error{Kind: transport.KindNotFound, StatusCode: 404}}
	if _, err := arr.Fetch[item](context.Background(), f, transport.Request{Path: "item/9"}); !transport.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFetch_PagedRecords(t *testing.T) {
	f := &fakeRequester{resp: jsonResponse(`{"page":1,"pageSize":10,"sortKey":"title","sortDirection":"ascending","totalRecords":1,"records":[{"id":1,"label":"a"}]}`)}
	p, err := arr.Fetch[itemPage](context.Background(), f, transport.Request{Path: "items"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SortKey != byTitle || p.SortDirection != arr.Ascending || len(p.Records) != 1 || *p.Records[0].Label != "a" {
		t.Fatalf("unexpected page: %+v", p)
	}
}

func TestFetchList(t *testing.T) {
	f := &fakeRequester{resp: jsonResponse(`[]`)}
	vs, err := arr.FetchList[item](context.Background(), f, transport.Request{Path: "items"})
	if err != nil || vs == nil || len(vs) != 0 {
		t.Fatalf("expected empty non-nil list, got %v %v", vs, err)
	}
	f.resp = jsonResponse(`{"id":1}`)
	if _, err := arr.FetchList[item](context.Background(), f, transport.Request{Path: "items"}); !goarr.HasCode(err, goarr.CodeInvalidType) {
		t.Fatalf("expected invalid_type for a non-array body, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	f := &fakeRequester{resp: jsonResponse(`{}`)}
	ok, err := arr.Delete(context.Background(), f, transport.Request{Path: "tag/1"})
	if err != nil || !ok {
		t.Fatalf("expected acknowledgement, got %v %v", ok, err)
	}
	if f.got.Method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %q", f.got.Method)
	}
	f.resp = &transport.Response{StatusCode: 200, ContentType: "text/plain", Body: []byte("ok")}
	if ok, _ := arr.Delete(context.Background(), f, transport.Request{Path: "tag/1"}); ok {
		t.Fatalf("a text body is not an acknowledgement")
	}
}

func TestWire(t *testing.T) {
	w, err := arr.Wire(&transport.Response{ContentType: "text/plain", Body: []byte("pong")})
	if err != nil || w != "pong" {
		t.Fatalf("expected text body, got %v %v", w, err)
	}
	_, err = arr.Wire(jsonResponse(`{"a":1,"a":2}`))
	if !goarr.HasCode(err, goarr.CodeDuplicateKey) {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
}
