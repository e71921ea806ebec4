package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	j "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultBasePath  = "/api/"
	defaultPort      = 8989
	defaultUserAgent = "goarr/0.1"
	defaultTimeout   = 8 * time.Second
	acceptHeader     = "application/json, text/plain, */*"
)

// Request is one API call relative to the configured base path.
type Request struct {
	Method string     // defaults to GET
	Path   string     // relative, e.g. "series/1"
	Query  url.Values // optional
	Body   any        // optional; marshalled as JSON
}

// Response is a completed exchange with a 1xx-3xx status.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
	RequestID   string
}

// IsJSON reports whether the response declared a JSON body.
func (r *Response) IsJSON() bool { return strings.Contains(r.ContentType, "application/json") }

// Requester performs API calls. *Client implements it; tests substitute fakes.
type Requester interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

var _ Requester = (*Client)(nil)

// Config configures a Client.
type Config struct {
	Host     string
	Port     int    // defaults to 8989
	BasePath string // defaults to "/api/"
	TLS      bool
	// InsecureSkipVerify disables certificate checks when TLS is set.
	InsecureSkipVerify bool
	APIKey             string
	UserAgent          string
	Timeout            time.Duration // per request; defaults to 8s
	// RateLimit caps requests per second; 0 means unlimited.
	RateLimit float64
	Burst     int
	Logger    *slog.Logger
	// HTTPClient overrides the underlying client (TLS settings are then ignored).
	HTTPClient *http.Client
}

// Client is a thin HTTP wrapper that adds the API key, request ids,
// timeouts, client-side rate limiting and error classification.
// It is safe for concurrent use.
type Client struct {
	base      *url.URL
	http      *http.Client
	apiKey    string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// New builds a Client from cfg.
func New(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, errors.New("transport: host is required")
	}
	port := cfg.Port
	if port == 0 {
		port = defaultPort
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("transport: invalid port %d", port)
	}
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	scheme := "http"
	if cfg.TLS {
		scheme = "https"
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
		if cfg.TLS && cfg.InsecureSkipVerify {
			hc.Transport = &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}} //nolint:gosec // opt-in for self-signed home servers
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:      &url.URL{Scheme: scheme, Host: net.JoinHostPort(host, strconv.Itoa(port)), Path: basePath},
		http:      hc,
		apiKey:    cfg.APIKey,
		userAgent: ua,
		timeout:   timeout,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
	}, nil
}

// BaseURL returns a copy of the API root URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// Do performs req. Status 403 and 404 and any other 4xx/5xx become *Error
// values; network failures and timeouts become KindConnection errors.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c == nil {
		return nil, errors.New("transport: client is nil")
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	rel := &url.URL{Path: strings.TrimPrefix(req.Path, "/")}
	if len(req.Query) > 0 {
		rel.RawQuery = req.Query.Encode()
	}
	target := c.base.ResolveReference(rel)

	var body io.Reader
	if req.Body != nil {
		buf, err := j.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("transport: encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: KindConnection, Err: err}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("transport: create request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", acceptHeader)
	httpReq.Header.Set("Accept-Encoding", acceptEncoding)
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("X-Request-Id", requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	log := c.logger.With("method", method, "path", target.Path, "request_id", requestID)
	log.DebugContext(ctx, "arr request")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.WarnContext(ctx, "arr request failed", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindConnection, Err: fmt.Errorf("timeout after %s: %w", c.timeout, err)}
		}
		return nil, &Error{Kind: KindConnection, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := readBody(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, &Error{Kind: KindConnection, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	contentType := resp.Header.Get("Content-Type")
	log.DebugContext(ctx, "arr response", "status", resp.StatusCode, "bytes", len(raw), "elapsed", time.Since(started))

	if err := classify(resp.StatusCode, contentType, raw); err != nil {
		log.InfoContext(ctx, "arr request rejected", "status", resp.StatusCode)
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, ContentType: contentType, Body: raw, RequestID: requestID}, nil
}

func classify(status int, contentType string, body []byte) error {
	switch {
	case status == http.StatusForbidden:
		return &Error{Kind: KindAccessRestricted, StatusCode: status, ContentType: contentType, Body: body}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: status, ContentType: contentType, Body: body}
	case status/100 != 4 && status/100 != 5:
		return nil
	}
	e := &Error{Kind: KindHTTP, StatusCode: status, ContentType: contentType, Body: body}
	if mt, _, _ := mime.ParseMediaType(contentType); mt == "application/json" {
		var detail any
		if err := j.Unmarshal(body, &detail); err == nil {
			e.Detail = detail
			return e
		}
	}
	e.Detail = map[string]any{
		"content-type": contentType,
		"message":      string(body),
		"status-code":  status,
	}
	return e
}
