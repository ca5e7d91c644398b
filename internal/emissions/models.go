package emissions

import (
	"fmt"
	"time"
)

// Sample is a single geo-tagged measurement returned by the Emissions API.
// Latitude is in [-90, 90], longitude in [-180, 180]. Samples are immutable
// once fetched; duplicate coordinates are allowed.
type Sample struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Value     float64 `json:"value"`
}

// InBounds reports whether the sample's coordinates are valid geographic
// coordinates. Samples outside these bounds are skipped during decoding.
func (s Sample) InBounds() bool {
	return s.Latitude >= -90 && s.Latitude <= 90 &&
		s.Longitude >= -180 && s.Longitude <= 180
}

// Day identifies one UTC calendar day of data.
type Day struct {
	t time.Time
}

// ParseDay parses an ISO date like "2020-06-04".
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Day{t: t.UTC()}, nil
}

// String returns the ISO form of the day.
func (d Day) String() string {
	return d.t.Format("2006-01-02")
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return Day{t: d.t.AddDate(0, 0, 1)}
}

// After reports whether d is after other.
func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

// Time returns the day as midnight UTC.
func (d Day) Time() time.Time {
	return d.t
}

// DaysBetween returns every day from begin to end inclusive, in order.
func DaysBetween(begin, end Day) []Day {
	var days []Day
	for d := begin; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}
