package goarr

import (
	"bytes"
	"sync"

	j "github.com/goccy/go-json"
)

// JSONDriver converts raw JSON into untyped wire values and back via a
// pluggable SPI. The default implementation is backed by goccy/go-json and
// may be swapped with SetJSONDriver.
//
// Unmarshal must produce only: nil, bool, json.Number (or another value with
// Int64/Float64/String methods), string, []any and map[string]any.
type JSONDriver interface {
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default go-json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver in effect.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) Unmarshal(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (goJSONDriver) Marshal(v any) ([]byte, error) { return j.Marshal(v) }

func (goJSONDriver) Name() string { return "go-json" }

// UnmarshalWire parses data with the current driver. Duplicate object keys are
// rejected with duplicate_key issues unless allowDup is set.
func UnmarshalWire(data []byte, allowDup bool) (any, error) {
	if !allowDup {
		iss, err := DetectJSONDuplicateKeysBytes(data, -1)
		if err != nil {
			return nil, err
		}
		if len(iss) > 0 {
			return nil, iss
		}
	}
	v, err := CurrentJSONDriver().Unmarshal(data)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return v, nil
}
