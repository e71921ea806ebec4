package arr

import (
	"context"
	"fmt"
	"net/http"

	goarr "github.com/reoring/goarr"
	"github.com/reoring/goarr/record"
	"github.com/reoring/goarr/transport"
)

// Wire returns the untyped body of resp: the parsed JSON value for JSON
// responses, the body text otherwise.
func Wire(resp *transport.Response) (any, error) {
	if !resp.IsJSON() {
		return string(resp.Body), nil
	}
	return goarr.UnmarshalWire(resp.Body, false)
}

// Fetch performs req and decodes a single record from the response.
func Fetch[T any](ctx context.Context, r transport.Requester, req transport.Request) (T, error) {
	var zero T
	wire, err := exchange(ctx, r, req)
	if err != nil {
		return zero, err
	}
	v, err := record.Decode[T](ctx, wire)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", req.Path, err)
	}
	return v, nil
}

// FetchList performs req and decodes an array of records.
func FetchList[T any](ctx context.Context, r transport.Requester, req transport.Request) ([]T, error) {
	wire, err := exchange(ctx, r, req)
	if err != nil {
		return nil, err
	}
	vs, err := record.DecodeList[T](ctx, wire)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", req.Path, err)
	}
	return vs, nil
}

// Delete performs a DELETE and reports whether the server acknowledged it
// with an empty JSON object.
func Delete(ctx context.Context, r transport.Requester, req transport.Request) (bool, error) {
	req.Method = http.MethodDelete
	wire, err := exchange(ctx, r, req)
	if err != nil {
		return false, err
	}
	m, ok := wire.(map[string]any)
	return ok && len(m) == 0, nil
}

func exchange(ctx context.Context, r transport.Requester, req transport.Request) (any, error) {
	resp, err := r.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	wire, err := Wire(resp)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", req.Path, err)
	}
	return wire, nil
}
