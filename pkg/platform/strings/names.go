// Package strings provides helpers for free-text person and role names.
package strings

import (
	"strings"
)

// UniqueNames trims each name and drops blanks and repeats. Names that differ
// only in case or inner spacing are the same person; the first spelling wins.
//
//	UniqueNames([]string{" Plant  Manager", "Director", "plant manager", ""})
//	// []string{"Plant  Manager", "Director"}
func UniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := NameKey(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// NameKey folds a name for comparison: lower case, single spaces.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
