package interval

import (
	"time"
)

// Interval is a half-open time window [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func (i Interval) Start() time.Time {
	return i.start
}

func (i Interval) End() time.Time {
	return i.end
}

func (i Interval) Equal(other Interval) bool {
	return i.start.Equal(other.start) && i.end.Equal(other.end)
}

// Overlaps reports whether the two half-open windows share any instant.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

func (i Interval) Hours() float64 {
	return i.end.Sub(i.start).Hours()
}

// OverlapHours returns the length of the intersection with other in hours,
// zero when the windows are disjoint.
func (i Interval) OverlapHours(other Interval) float64 {
	start := i.start
	if other.start.After(start) {
		start = other.start
	}
	end := i.end
	if other.end.Before(end) {
		end = other.end
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}

func NewInterval(start, end time.Time) Interval {
	return Interval{
		start: start,
		end:   end,
	}
}
