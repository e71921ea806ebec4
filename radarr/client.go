// Package radarr is a typed client for the Radarr v3 API, sharing the paging
// group and fetch helpers with the sonarr package.
package radarr

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/transport"
)

const (
	DefaultPort     = 7878
	DefaultBasePath = "/api/v3/"
)

type Client struct {
	r   transport.Requester
	now func() time.Time
}

// New builds a Client over an HTTP transport. Port and base path default to
// Radarr's.
func New(cfg transport.Config) (*Client, error) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
	}
	tc, err := transport.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("radarr: %w", err)
	}
	return NewWithRequester(tc), nil
}

func NewWithRequester(r transport.Requester) *Client { return &Client{r: r, now: time.Now} }

// Week returns the Monday starting the week of d and the Sunday ending it.
func Week(d codec.Date) (start, end codec.Date) {
	offset := (int(d.In(time.UTC).Weekday()) + 6) % 7
	start = d.AddDays(-offset)
	return start, start.AddDays(6)
}

// Calendar lists movies releasing between start and end. A zero start means
// the Monday of the current week; a zero end means six days after start.
func (c *Client) Calendar(ctx context.Context, start, end codec.Date) ([]Movie, error) {
	if start.IsZero() {
		start, _ = Week(codec.DateOf(c.now()))
	}
	if end.IsZero() {
		end = start.AddDays(6)
	}
	q := url.Values{"start": {start.String()}, "end": {end.String()}}
	vs, err := arr.FetchList[Movie](ctx, c.r, transport.Request{Path: "calendar", Query: q})
	if err != nil {
		return nil, fmt.Errorf("radarr: calendar: %w", err)
	}
	return vs, nil
}

// Queue returns the records of the first queue page.
func (c *Client) Queue(ctx context.Context) ([]QueueItem, error) {
	p, err := c.QueuePage(ctx, arr.PageQuery[SortKey]{})
	if err != nil {
		return nil, err
	}
	return p.Records, nil
}

// QueuePage returns one page of the download queue.
func (c *Client) QueuePage(ctx context.Context, pq arr.PageQuery[SortKey]) (QueuePage, error) {
	p, err := arr.Fetch[QueuePage](ctx, c.r, transport.Request{Path: "queue", Query: pq.Values(SortKeys)})
	if err != nil {
		return QueuePage{}, fmt.Errorf("radarr: queue: %w", err)
	}
	return p, nil
}

// Movies lists every movie in the library.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	vs, err := arr.FetchList[Movie](ctx, c.r, transport.Request{Path: "movie"})
	if err != nil {
		return nil, fmt.Errorf("radarr: movies: %w", err)
	}
	return vs, nil
}
