package itinerary

import (
	"math"

	"voyago/travel-planner/internal/domain"
)

// DurationDays computes the inclusive day count of a trip's date range:
// ceil((end - start) / 24h) + 1, so a single-day trip (start == end) is 1.
//
// A reversed range is NOT rejected; it yields a value <= 0 which callers must
// treat as an invalid-trip signal rather than a valid duration. A date that
// fails to parse returns an error instead of a count.
func DurationDays(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}

	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return days, nil
}

// TripSummary carries the per-trip display statistics derived from stored
// fields.
type TripSummary struct {
	DurationDays  int     `json:"durationDays"`
	ActivityCount int     `json:"activityCount"`
	TotalCost     float64 `json:"totalCost"`
}

// Summarize derives a trip's summary statistics from its stored dates and
// its activity collection. Trips whose dates do not parse report a zero
// duration; a non-positive duration means the stored range is reversed.
// Activities without a recorded cost contribute nothing to TotalCost.
func Summarize(trip domain.Trip, activities []domain.Activity) TripSummary {
	summary := TripSummary{ActivityCount: len(activities)}

	if days, err := DurationDays(trip.StartDate, trip.EndDate); err == nil {
		summary.DurationDays = days
	}

	for _, activity := range activities {
		if activity.Cost != nil {
			summary.TotalCost += *activity.Cost
		}
	}
	return summary
}
