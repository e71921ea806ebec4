package transport

import (
	"errors"
	"fmt"
)

// Kind classifies a transport failure.
type Kind int

const (
	// KindConnection covers timeouts, DNS and socket failures.
	KindConnection Kind = iota + 1
	// KindAccessRestricted is a 403, usually a missing or wrong API key.
	KindAccessRestricted
	// KindNotFound is a 404.
	KindNotFound
	// KindHTTP is any other 4xx or 5xx status.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindAccessRestricted:
		return "access_restricted"
	case KindNotFound:
		return "not_found"
	case KindHTTP:
		return "http"
	}
	return "unknown"
}

// Error is returned by Client.Do for every failed exchange. Decoding failures
// of a successful response are not transport errors.
type Error struct {
	Kind        Kind
	StatusCode  int
	ContentType string
	// Body is the raw response body for HTTP failures.
	Body []byte
	// Detail is the parsed body when the server answered with JSON, otherwise
	// a map with "content-type", "message" and "status-code".
	Detail any
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConnection:
		if e.Err != nil {
			return fmt.Sprintf("arr: connection error: %v", e.Err)
		}
		return "arr: connection error"
	case KindAccessRestricted:
		return "arr: access restricted; ensure a valid API key is provided"
	case KindNotFound:
		return "arr: resource not found"
	}
	if m, ok := e.Detail.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return fmt.Sprintf("arr: HTTP %d: %s", e.StatusCode, msg)
		}
	}
	return fmt.Sprintf("arr: HTTP %d", e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 transport error.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsAccessRestricted reports whether err is a 403 transport error.
func IsAccessRestricted(err error) bool { return hasKind(err, KindAccessRestricted) }

// IsConnection reports whether err is a connection-level transport error.
func IsConnection(err error) bool { return hasKind(err, KindConnection) }

func hasKind(err error, k Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == k
}
