// Package search implements the console's list filtering: a pure,
// case-insensitive substring scan over each record's fixed set of searchable
// fields. There is no indexing and no tokenizing; lists come from the upstream
// a page at a time and live in memory.
package search

import "strings"

// Searchable is implemented by display models that expose the fields substring
// search runs over (name fields, identifiers as text, convenience fields,
// dates as text).
type Searchable interface {
	SearchFields() []string
}

// Filter returns the subsequence of items whose search fields contain query,
// case-insensitively, preserving input order. The empty query is the identity:
// the input slice is returned unchanged. Filter never mutates its input, so
// filtering an already-filtered list with the same query is a no-op.
func Filter[T Searchable](items []T, query string) []T {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Matches reports whether any search field of item contains needle. The
// needle must already be lowercased.
func Matches(item Searchable, needle string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
