// Package matcher selects variants by a CLI pattern.
package matcher

import "strings"

// Match reports whether the qualified variant name ("family/variant")
// satisfies pattern. "*" matches everything, an empty pattern nothing, and
// any other pattern matches by prefix, so "encoder/" selects a whole family.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
}
