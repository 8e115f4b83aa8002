package itinerary

import (
	"voyago/travel-planner/internal/domain"
)

// TypeFilterAll is the category selection meaning "no filter".
const TypeFilterAll = "all"

// MatchesType reports whether a trip's category passes the selected filter.
// The TypeFilterAll sentinel passes every trip; any other selection is an
// exact, case-sensitive comparison against the trip's type.
func MatchesType(selected string, tripType domain.TripType) bool {
	return selected == TypeFilterAll || selected == string(tripType)
}

// FilterTrips returns the trips matching both the free-text query and the
// selected category, preserving the input order. The input is expected to
// arrive already sorted (the repositories deliver most-recent-first); this
// function never reorders it.
//
// The result is recomputed in full on every call. Collections here are tens
// to low hundreds of records, so there is nothing to gain from incremental
// bookkeeping.
func FilterTrips(trips []domain.Trip, query, selectedType string) []domain.Trip {
	filtered := make([]domain.Trip, 0, len(trips))
	for _, trip := range trips {
		if !MatchesQuery(query, trip.Title, trip.Destination, trip.Description) {
			continue
		}
		if !MatchesType(selectedType, trip.TripType) {
			continue
		}
		filtered = append(filtered, trip)
	}
	return filtered
}
