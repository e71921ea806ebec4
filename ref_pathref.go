package goarr

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// The zero value is the document root.
type PathRef struct {
	parts []string
}

// Root returns the root path.
func Root() PathRef { return PathRef{} }

// ParsePointer splits a JSON Pointer into a PathRef.
func ParsePointer(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return PathRef{parts: parts}
}

// Field appends an object key, escaping per RFC6901.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return PathRef{parts: append(append([]string(nil), p.parts...), esc)}
}

// Index appends an array index.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string(nil), p.parts...), strconv.Itoa(i))}
}

// Pointer renders the path; the root renders as "/".
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Depth returns the number of segments.
func (p PathRef) Depth() int { return len(p.parts) }

// Issue creates an Issue at this path. kv pairs become Params.
func (p PathRef) Issue(code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 1 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}

// Rebase prefixes a child pointer with this path. Child pointers are always
// absolute ("/x/y" or "/").
func (p PathRef) Rebase(child string) string {
	base := p.Pointer()
	if child == "" || child == "/" {
		return base
	}
	if base == "/" {
		return child
	}
	return base + child
}
