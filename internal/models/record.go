// Package models defines the loosely-typed record structures shared by the
// fetcher, normalizer and aggregator.
package models

import "strings"

// Record is a single structured entity: a mapping from field name to a value
// of type string, number, bool, nil, nested Record, or an ordered sequence
// thereof. Fields are optional; access goes through Get with a default.
type Record = map[string]any

// Collection is an ordered sequence of Records. Order matters only for
// output determinism.
type Collection = []Record

// Pair is a two-element tuple serialized as a JSON array, used for
// (headline, url) and (identifier, label) outputs.
type Pair [2]any

// Get returns the value for key, or def when the key is absent.
func Get(r Record, key string, def any) any {
	if v, ok := r[key]; ok {
		return v
	}

	return def
}

// GetString returns the value for key as a string, or def when the key is
// absent or not a string.
func GetString(r Record, key, def string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return def
}

// GetPath resolves a dotted field path ("headline.main") through nested
// Records. The second return value reports whether every segment resolved.
func GetPath(r Record, path string) (any, bool) {
	segments := strings.Split(path, ".")

	var current any = r

	for _, seg := range segments {
		rec, ok := current.(Record)
		if !ok {
			return nil, false
		}

		current, ok = rec[seg]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Clone returns a shallow copy of the record. Nested values are shared.
func Clone(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}
