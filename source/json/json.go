// Package json provides a JSONDriver backed by the standard library's
// encoding/json, for callers that must avoid the go-json dependency at run
// time or want byte-for-byte stdlib error messages.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	goarr "github.com/reoring/goarr"
)

// Driver returns the encoding/json driver. Install it with
// goarr.SetJSONDriver.
func Driver() goarr.JSONDriver { return driver{} }

type driver struct{}

func (driver) Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: trailing data after top-level value")
	}
	return v, nil
}

func (driver) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (driver) Name() string { return "encoding/json" }
