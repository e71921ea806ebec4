package codec

import (
	"context"
	"fmt"
	"strings"
	"time"

	goarr "github.com/reoring/goarr"
)

const timestampLayout = "2006-01-02T15:04:05"

// Timestamp returns a Codec that converts between the service's Zulu
// timestamps ("2018-05-14T19:02:13.1014986Z") and time.Time.
func Timestamp() goarr.Codec[string, time.Time] {
	return stringCodec[time.Time]{decode: ParseTimestamp, encode: formatTimestampErr}
}

// ParseTimestamp parses YYYY-MM-DDTHH:MM:SS[.f+]Z. The trailing Z is
// mandatory. Fractional seconds may carry any number of digits and are
// rounded half-up to the nearest microsecond; a rounding carry moves the
// instant into the next second. The result is always in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if !strings.HasSuffix(s, "Z") {
		return time.Time{}, malformedTimestamp(s, "missing trailing Z (UTC marker)", nil)
	}
	body := s[:len(s)-1]
	micro, carry := 0, false
	if i := strings.IndexByte(body, '.'); i >= 0 {
		var err error
		micro, carry, err = rescaleFraction(body[i+1:])
		if err != nil {
			return time.Time{}, malformedTimestamp(s, err.Error(), err)
		}
		body = body[:i]
	}
	t, err := time.ParseInLocation(timestampLayout, body, time.UTC)
	if err != nil {
		return time.Time{}, malformedTimestamp(s, "not a calendar date-time", err)
	}
	t = t.Add(time.Duration(micro) * time.Microsecond)
	if carry {
		t = t.Add(time.Second)
	}
	return t, nil
}

// FormatTimestamp renders t's wall clock as YYYY-MM-DDTHH:MM:SS[.ffffff]Z.
// The location is dropped, not converted: t is assumed to already be UTC.
// Sub-microsecond precision is truncated; a zero microsecond omits the
// fraction entirely.
func FormatTimestamp(t time.Time) string {
	b := &strings.Builder{}
	b.WriteString(t.Format(timestampLayout))
	if micro := t.Nanosecond() / 1000; micro != 0 {
		fmt.Fprintf(b, ".%06d", micro)
	}
	b.WriteByte('Z')
	return b.String()
}

func formatTimestampErr(t time.Time) (string, error) { return FormatTimestamp(t), nil }

func malformedTimestamp(s, msg string, cause error) error {
	return goarr.Issues{{
		Path:    "/",
		Code:    goarr.CodeMalformedTimestamp,
		Message: msg,
		Value:   s,
		Cause:   cause,
	}}
}

// stringCodec adapts a parse/format pair to goarr.Codec[string, B].
type stringCodec[B any] struct {
	decode func(string) (B, error)
	encode func(B) (string, error)
}

func (c stringCodec[B]) Decode(_ context.Context, a string) (B, error) { return c.decode(a) }
func (c stringCodec[B]) Encode(_ context.Context, b B) (string, error) { return c.encode(b) }
