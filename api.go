package goarr

import (
	"context"
	"errors"
)

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> domain
	Encode(ctx context.Context, b B) (A, error) // domain -> wire
}

// EncodeMode exposes canonical vs preserving output intent at call sites.
// For non-WithMeta values, Preserving is not applicable and callers must supply presence via Decoded.
type EncodeMode int

const (
	EncodeCanonical EncodeMode = iota
	EncodePreserve
)

// ErrEncodePreserveRequiresPresence indicates EncodePreserve was requested without presence metadata.
var ErrEncodePreserveRequiresPresence = errors.New("goarr: encode preserve requires presence; supply Decoded from DecodeWithMeta")

// ---- Decode-time context options ----

type contextKey int

const (
	_ctxKeyCollect contextKey = iota
	_ctxKeyAllowDuplicateKeys
)

// WithCollect returns a child context that makes decoders gather every issue
// instead of stopping at the first one. The default is fail-fast.
func WithCollect(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyCollect, enabled)
}

// IsCollect reports whether the current decode should keep going after an issue.
func IsCollect(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyCollect)
	b, _ := v.(bool)
	return b
}

// WithAllowDuplicateKeys relaxes the duplicate-key check applied to raw JSON
// input. The last occurrence of a key wins when enabled.
func WithAllowDuplicateKeys(ctx context.Context, allow bool) context.Context {
	return context.WithValue(ctx, _ctxKeyAllowDuplicateKeys, allow)
}

// IsAllowDuplicateKeys reports whether duplicate JSON keys are tolerated.
func IsAllowDuplicateKeys(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyAllowDuplicateKeys)
	b, _ := v.(bool)
	return b
}
