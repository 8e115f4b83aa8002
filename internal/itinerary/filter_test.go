package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/travel-planner/internal/domain"
	"voyago/travel-planner/internal/itinerary"
)

func sampleTrips() []domain.Trip {
	return []domain.Trip{
		{Title: "Italy Food Tour", Destination: "Italy", Description: "two weeks of pasta", TripType: domain.TripTypeLeisure},
		{Title: "Japan Hiking", Destination: "Japan", Description: "food and culture", TripType: domain.TripTypeAdventure},
		{Title: "France", Destination: "France", Description: "wine", TripType: domain.TripTypeRomantic},
	}
}

func TestMatchesType_SentinelPassesEveryType(t *testing.T) {
	for _, tt := range domain.TripTypes {
		assert.True(t, itinerary.MatchesType(itinerary.TypeFilterAll, tt))
	}
}

func TestMatchesType_ExactCaseSensitiveComparison(t *testing.T) {
	assert.True(t, itinerary.MatchesType("adventure", domain.TripTypeAdventure))
	assert.False(t, itinerary.MatchesType("Adventure", domain.TripTypeAdventure))
	assert.False(t, itinerary.MatchesType("leisure", domain.TripTypeAdventure))
}

func TestFilterTrips_QueryAndsAcrossTerms(t *testing.T) {
	// "food" alone matches trips 1 and 2, but "italy" only matches trip 1;
	// every term has to match, so only trip 1 survives.
	got := itinerary.FilterTrips(sampleTrips(), "italy food", itinerary.TypeFilterAll)

	require.Len(t, got, 1)
	assert.Equal(t, "Italy Food Tour", got[0].Title)
}

func TestFilterTrips_TypeFilterCombinesWithQuery(t *testing.T) {
	got := itinerary.FilterTrips(sampleTrips(), "food", "adventure")

	require.Len(t, got, 1)
	assert.Equal(t, "Japan Hiking", got[0].Title)
}

func TestFilterTrips_NoFilterReturnsInputUnchanged(t *testing.T) {
	trips := sampleTrips()

	got := itinerary.FilterTrips(trips, "", itinerary.TypeFilterAll)

	// Sentinel category plus empty query must round-trip the collection in
	// its original order.
	require.Equal(t, trips, got)
}

func TestFilterTrips_PreservesInputOrder(t *testing.T) {
	trips := sampleTrips()

	got := itinerary.FilterTrips(trips, "", "all")

	require.Len(t, got, 3)
	assert.Equal(t, "Italy Food Tour", got[0].Title)
	assert.Equal(t, "Japan Hiking", got[1].Title)
	assert.Equal(t, "France", got[2].Title)
}

func TestFilterTrips_EmptyInput(t *testing.T) {
	got := itinerary.FilterTrips(nil, "anything", "all")

	require.NotNil(t, got)
	assert.Empty(t, got)
}
