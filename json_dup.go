package goarr

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	path         PathRef
	keys         map[string]struct{}
	expectingKey bool
	index        int
}

// DetectJSONDuplicateKeysBytes detects duplicate object keys in a JSON byte
// slice. maxIssues < 0 means unlimited; 0 disables detection; > 0 caps the
// result and appends a truncated marker when reached. Malformed input is
// reported as a parse_error issue rather than an error.
func DetectJSONDuplicateKeysBytes(data []byte, maxIssues int) (Issues, error) {
	return DetectJSONDuplicateKeysReader(bytes.NewReader(data), maxIssues)
}

// DetectJSONDuplicateKeysReader detects duplicate object keys from an io.Reader.
// Note: this will consume the reader fully.
func DetectJSONDuplicateKeysReader(r io.Reader, maxIssues int) (Issues, error) {
	if maxIssues == 0 {
		return nil, nil
	}
	dec := j.NewDecoder(r)
	dec.UseNumber()

	var issues Issues
	var stack []dupFrame
	full := func() bool { return maxIssues > 0 && len(issues) >= maxIssues }

	// valueDone advances the enclosing container after a complete value.
	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.kind == kindObject {
				top.expectingKey = true
			} else {
				top.index++
			}
		}
	}
	// childPath is the path of the value about to be read.
	childPath := func(key string) PathRef {
		if n := len(stack); n > 0 {
			top := stack[n-1]
			if top.kind == kindObject {
				return top.path.Field(key)
			}
			return top.path.Index(top.index)
		}
		return Root()
	}

	lastKey := ""
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			issues = AppendIssues(issues, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
			break
		}
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, dupFrame{kind: kindObject, path: childPath(lastKey), keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, dupFrame{kind: kindArray, path: childPath(lastKey)})
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						issues = AppendIssues(issues, top.path.Field(v).Issue(CodeDuplicateKey, "key '"+v+"' duplicated"))
						if full() {
							issues = AppendIssues(issues, Issue{Path: "/", Code: CodeTruncated, Message: "max issues reached"})
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					lastKey = v
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
	return issues, nil
}
