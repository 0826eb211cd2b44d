//go:build unit || e2e

package testutil

import "strings"

// Field sets key in a JSON body map, or removes it when value is nil.
// Dotted keys such as "opening_hours.slot_minutes" reach into nested objects;
// missing parents are created.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, p := range path[:len(path)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		leaf := path[len(path)-1]
		if value == nil {
			delete(m, leaf)
			return
		}
		m[leaf] = value
	}
}
