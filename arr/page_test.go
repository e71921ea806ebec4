package arr_test

import (
	"testing"

	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/codec"
)

type sortKey int

const (
	byTitle sortKey = iota + 1
	byDate
)

var sortKeys = codec.RegisterEnum(map[sortKey]string{byTitle: "title", byDate: "date"})

func TestSortDirection_Param(t *testing.T) {
	if arr.Ascending.Param() != "asc" || arr.Descending.Param() != "desc" {
		t.Fatalf("unexpected params %q %q", arr.Ascending.Param(), arr.Descending.Param())
	}
	if arr.Descending.String() != "descending" {
		t.Fatalf("unexpected wire name %q", arr.Descending.String())
	}
}

func TestPageQuery_Values(t *testing.T) {
	v := arr.PageQuery[sortKey]{}.Values(sortKeys)
	if v.Get("page") != "1" || v.Get("pageSize") != "10" {
		t.Fatalf("expected paging defaults, got %v", v)
	}
	if v.Has("sortKey") || v.Has("sortDir") {
		t.Fatalf("zero sort fields must be omitted, got %v", v)
	}
	v = arr.PageQuery[sortKey]{SortKey: byDate, Page: 2, PageSize: 50, SortDirection: arr.Descending}.Values(sortKeys)
	if v.Encode() != "page=2&pageSize=50&sortDir=desc&sortKey=date" {
		t.Fatalf("unexpected query %q", v.Encode())
	}
}
