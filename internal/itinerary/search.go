// Package itinerary holds the pure trip/activity aggregation logic: free-text
// search, category filtering, per-day activity grouping and duration math.
// Everything here is side-effect free and operates on in-memory collections;
// fetching and persistence live in the repository layer.
package itinerary

import "strings"

// MatchesQuery reports whether a record whose searchable text is given in
// fields (typically title, destination and description) matches the free-text
// query.
//
// The query is split on whitespace into lowercase terms. The record matches
// when every term is a case-insensitive substring of at least one field.
// An empty or whitespace-only query matches everything. Absent fields should
// be passed as empty strings.
func MatchesQuery(query string, fields ...string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}

	lowered := make([]string, len(fields))
	for i, f := range fields {
		lowered[i] = strings.ToLower(f)
	}

	for _, term := range terms {
		found := false
		for _, f := range lowered {
			if strings.Contains(f, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
