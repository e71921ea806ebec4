package goarr

import "strings"

// Presence is the bit flag collected by WithMeta APIs.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Absent field fell back to its default.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the decoded value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Seen reports whether the pointer was present in the input (null included).
func (pm PresenceMap) Seen(pointer string) bool {
	return pm[pointer]&PresenceSeen != 0
}

// Mark ORs flags into the entry for pointer.
func (pm PresenceMap) Mark(pointer string, p Presence) {
	if pm == nil {
		return
	}
	pm[pointer] |= p
}

// Under returns the entries below prefix, re-rooted so that prefix becomes "/".
func (pm PresenceMap) Under(prefix string) PresenceMap {
	if pm == nil {
		return nil
	}
	if prefix == "" || prefix == "/" {
		return pm
	}
	out := make(PresenceMap)
	for k, v := range pm {
		switch {
		case k == prefix:
			out["/"] = v
		case strings.HasPrefix(k, prefix+"/"):
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}

// mergePresenceMaps returns a new PresenceMap that is the bitwise-OR merge of a and b.
func mergePresenceMaps(a, b PresenceMap) PresenceMap {
	if a == nil && b == nil {
		return nil
	}
	out := make(PresenceMap, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] |= v
	}
	return out
}

// MergePresence folds child presence (rooted at "/") under prefix into dst.
func MergePresence(dst PresenceMap, prefix string, child PresenceMap) PresenceMap {
	if child == nil {
		return dst
	}
	shifted := make(PresenceMap, len(child))
	for k, v := range child {
		if k == "/" {
			shifted[prefix] |= v
			continue
		}
		if prefix == "/" {
			shifted[k] |= v
			continue
		}
		shifted[prefix+k] |= v
	}
	return mergePresenceMaps(dst, shifted)
}
