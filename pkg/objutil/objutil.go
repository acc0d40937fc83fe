// Package objutil merges and walks loosely typed maps, such as decoded JSON
// or YAML documents.
package objutil

import (
	"regexp"
	"strconv"
)

var segment = regexp.MustCompile(`[A-Za-z0-9_]+`)

// Merge copies the keys of each map into a new map, later maps overriding
// earlier ones. Merging stops at the first nil map.
func Merge(maps ...map[string]any) map[string]any {
	res := make(map[string]any)
	for _, m := range maps {
		if m == nil {
			break
		}
		for k, v := range m {
			res[k] = v
		}
	}
	return res
}

// Route follows path through nested maps and slices and returns the value it
// points to, or nil when a step is missing. Segments are separated by any
// non-word characters, so "a.b[0].c" and "a/b/0/c" are equivalent.
func Route(obj any, path string) any {
	for _, key := range segment.FindAllString(path, -1) {
		switch v := obj.(type) {
		case map[string]any:
			obj = v[key]
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			obj = v[i]
		default:
			return nil
		}
		if obj == nil {
			return nil
		}
	}
	return obj
}
