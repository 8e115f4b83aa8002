package itinerary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/travel-planner/internal/itinerary"
)

func TestMatchesQuery_EmptyQueryMatchesEverything(t *testing.T) {
	assert.True(t, itinerary.MatchesQuery("", "Italy Food Tour", "Italy", "two weeks of pasta"))
	assert.True(t, itinerary.MatchesQuery("   \t ", "Italy Food Tour", "Italy", "two weeks of pasta"))
	assert.True(t, itinerary.MatchesQuery("", "", "", ""))
}

func TestMatchesQuery_SingleTerm(t *testing.T) {
	assert.True(t, itinerary.MatchesQuery("italy", "Italy Food Tour", "", ""))
	assert.True(t, itinerary.MatchesQuery("ITALY", "italy food tour", "", ""))
	assert.False(t, itinerary.MatchesQuery("spain", "Italy Food Tour", "Italy", "pasta"))
}

func TestMatchesQuery_EveryTermMustMatchSomeField(t *testing.T) {
	// "italy" matches the title, "food" matches the description; terms may
	// land in different fields as long as each lands somewhere.
	assert.True(t, itinerary.MatchesQuery("italy food", "Italy Trip", "Rome", "street food crawl"))

	// "food" matches but "italy" matches nothing, so the record is out.
	assert.False(t, itinerary.MatchesQuery("italy food", "Japan Hiking", "Japan", "food and culture"))
}

func TestMatchesQuery_AbsentFieldsBehaveAsEmpty(t *testing.T) {
	assert.True(t, itinerary.MatchesQuery("rome", "Rome weekend", "", ""))
	assert.False(t, itinerary.MatchesQuery("rome", "", "", ""))
}

func TestMatchesQuery_TokenizationIsIdempotent(t *testing.T) {
	// Splitting the query into terms and re-joining must not change the match
	// set, whatever whitespace the user typed.
	records := [][3]string{
		{"Italy Food Tour", "Italy", "two weeks of pasta"},
		{"Japan Hiking", "Japan", "food and culture"},
		{"France", "France", "wine"},
	}
	query := "  italy \t food  "
	rejoined := strings.Join(strings.Fields(query), " ")

	for _, r := range records {
		assert.Equal(t,
			itinerary.MatchesQuery(query, r[0], r[1], r[2]),
			itinerary.MatchesQuery(rejoined, r[0], r[1], r[2]),
		)
	}
}
