package itinerary

import "time"

// dateLayout is the single calendar-date format accepted throughout the
// itinerary logic: strict ISO-8601 date-only, interpreted in UTC.
const dateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 date string ("2006-01-02") as a UTC calendar
// date. No timezone normalization happens anywhere: two visually different
// strings are never treated as the same date even if a looser parser would
// consider them calendar-equivalent.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
