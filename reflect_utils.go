package goarr

import (
	"reflect"
	"strings"
)

// TagOptions are the per-field options read from the goarr struct tag.
type TagOptions struct {
	Default   bool // absent key decodes to the zero value
	OmitEmpty bool // encoder may drop nil/empty values
}

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// wire key used by the record descriptor and PresenceMap.
// Priority: goarr:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	name, _ := ResolveStructField(sf)
	return name
}

// ResolveStructField is like ResolveStructKey and also returns the goarr tag
// options ("default", "omitempty").
func ResolveStructField(sf reflect.StructField) (string, TagOptions) {
	var opts TagOptions
	name := ""
	if gt, ok := sf.Tag.Lookup("goarr"); ok {
		if strings.TrimSpace(gt) == "-" {
			return "-", opts
		}
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			switch {
			case strings.HasPrefix(p, "name="):
				name = strings.TrimPrefix(p, "name=")
			case p == "default":
				opts.Default = true
			case p == "omitempty":
				opts.OmitEmpty = true
			}
		}
	}
	if name != "" {
		return name, opts
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-", opts
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if strings.Contains(jt[i:], "omitempty") {
				opts.OmitEmpty = true
			}
			jt = jt[:i]
		}
		if jt != "" {
			return jt, opts
		}
	}
	return sf.Name, opts
}
