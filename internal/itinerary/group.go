package itinerary

import (
	"sort"

	"voyago/travel-planner/internal/domain"
)

// DayGroup is one calendar date's activities, in the order they arrived.
type DayGroup struct {
	Date       string            `json:"date"`
	Activities []domain.Activity `json:"activities"`
}

// GroupActivitiesByDate partitions a trip's activities into per-date buckets
// and returns them in chronological order.
//
// Bucketing is by exact date-string equality. Within a bucket, activities
// keep the relative order they arrived in. Buckets are sorted ascending by
// parsed calendar date; buckets whose date string does not parse as an
// ISO-8601 date sort after all parseable ones, ordered among themselves by
// byte-wise string comparison so the output stays deterministic.
//
// Empty input yields an empty (non-nil) result.
func GroupActivitiesByDate(activities []domain.Activity) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)

	for _, activity := range activities {
		i, ok := index[activity.Date]
		if !ok {
			i = len(groups)
			index[activity.Date] = i
			groups = append(groups, DayGroup{Date: activity.Date})
		}
		groups[i].Activities = append(groups[i].Activities, activity)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return dateLess(groups[a].Date, groups[b].Date)
	})

	return groups
}

// dateLess orders two date strings chronologically, pushing unparseable
// strings past every valid date.
func dateLess(a, b string) bool {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)

	switch {
	case errA == nil && errB == nil:
		return ta.Before(tb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
