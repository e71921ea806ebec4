package arr

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/reoring/goarr/codec"
)

// SortDirection orders paged results.
type SortDirection int

const (
	Ascending SortDirection = iota + 1
	Descending
)

// SortDirections is the wire table for SortDirection.
var SortDirections = codec.RegisterEnum(map[SortDirection]string{
	Ascending:  "ascending",
	Descending: "descending",
})

func (d SortDirection) String() string { return SortDirections.Wire(d) }

// Param is the short form ("asc"/"desc") accepted by paged query endpoints.
func (d SortDirection) Param() string { return strings.TrimSuffix(d.String(), "ending") }

// Page is the paging group shared by every paged response. Service records
// embed it next to their own Records field; K is the service's sort key enum.
type Page[K ~int] struct {
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	SortKey       K             `json:"sortKey"`
	SortDirection SortDirection `json:"sortDirection"`
	TotalRecords  int           `json:"totalRecords"`
}

// PageQuery selects a page of a paged endpoint.
type PageQuery[K ~int] struct {
	SortKey       K
	Page          int
	PageSize      int
	SortDirection SortDirection
}

// Values renders q as query parameters; wire names the sort key enum.
func (q PageQuery[K]) Values(wire *codec.EnumTable[K]) url.Values {
	v := url.Values{}
	if s := wire.Wire(q.SortKey); s != "" {
		v.Set("sortKey", s)
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = 10
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("pageSize", strconv.Itoa(size))
	if q.SortDirection != 0 {
		v.Set("sortDir", q.SortDirection.Param())
	}
	return v
}
