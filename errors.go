package goarr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType        = "invalid_type"
	CodeRequired           = "required"
	CodeUnknownKey         = "unknown_key"
	CodeDuplicateKey       = "duplicate_key"
	CodeInvalidEnum        = "invalid_enum"
	CodeInvalidFormat      = "invalid_format"
	CodeMalformedTimestamp = "malformed_timestamp"
	CodeParseError         = "parse_error"
	CodeTruncated          = "truncated"
)

// Issue represents a single decode or encode failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /episode/series/title).
	Code    string // One of the codes listed above.
	Message string
	// Record is the record type owning the failing field ("Episode").
	Record string
	// Field is the wire key of the failing field.
	Field string
	// Type is the declared Go type of the failing field ("*time.Time").
	Type string
	// Value is the offending wire value; nil when the key was absent.
	Value any
	Cause error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"allowed": [...]})
	// for i18n and observability.
	Params map[string]any
}

func (it Issue) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	if it.Record != "" {
		fmt.Fprintf(b, " (%s.%s", it.Record, it.Field)
		if it.Type != "" {
			fmt.Fprintf(b, " %s", it.Type)
		}
		b.WriteString(")")
	}
	if it.Message != "" {
		fmt.Fprintf(b, ": %s", it.Message)
	}
	return b.String()
}

// Issues is a collection of decode/encode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is reaches through an Issues value.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// DeclarationError reports a malformed record or enum declaration. It signals
// a programming error in a record catalog, never a bad wire payload.
type DeclarationError struct {
	Type   reflect.Type
	Field  string // Go field name; empty for type-level problems.
	Reason string
}

func (e *DeclarationError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Field != "" {
		return fmt.Sprintf("goarr: invalid declaration %s.%s: %s", name, e.Field, e.Reason)
	}
	return fmt.Sprintf("goarr: invalid declaration %s: %s", name, e.Reason)
}

// IsDeclarationError reports whether err is (or wraps) a *DeclarationError.
func IsDeclarationError(err error) bool {
	var de *DeclarationError
	return errors.As(err, &de)
}
