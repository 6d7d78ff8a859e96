package stats

import "strings"

// Searchable is implemented by entities that expose a fixed list of
// fields for the client-side table search.
type Searchable interface {
	SearchFields() []string
}

// Matches reports whether the entity matches a free-text query:
// case-insensitive substring match over the entity's searchable fields.
// An empty query matches everything. The predicate runs over the
// already-fetched collection and never re-queries the backend.
func Matches(query string, e Searchable) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, field := range e.SearchFields() {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Filter returns the entities of a snapshot matching the query, in order.
func Filter[T Searchable](collection []T, query string) []T {
	if strings.TrimSpace(query) == "" {
		return collection
	}
	var matched []T
	for _, e := range collection {
		if Matches(query, e) {
			matched = append(matched, e)
		}
	}
	return matched
}
