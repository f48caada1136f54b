package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/goto/foundry/internal/errors"
)

const EntityCalendar = "calendar"

// searchHorizonDays bounds the forward scan for a shift start. A full week
// plus one boundary day is enough for any shift set that runs at all.
const searchHorizonDays = 8

type ShiftID int

// ClockTime is a wall-clock instant expressed as minutes from midnight.
type ClockTime int

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

func (c ClockTime) Duration() time.Duration {
	return time.Duration(c) * time.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Shift is a recurring daily wall-clock window. A shift whose end is
// numerically before its start crosses midnight.
type Shift struct {
	Start ClockTime
	End   ClockTime
}

func (s Shift) Overnight() bool {
	return s.End < s.Start
}

func (s Shift) Hours() float64 {
	if s.Overnight() {
		return (24*time.Hour - s.Start.Duration() + s.End.Duration()).Hours()
	}
	return (s.End.Duration() - s.Start.Duration()).Hours()
}

// Contains reports whether the wall-clock offset tod falls within the shift.
func (s Shift) Contains(tod time.Duration) bool {
	if s.Overnight() {
		return tod >= s.Start.Duration() || tod < s.End.Duration()
	}
	return tod >= s.Start.Duration() && tod < s.End.Duration()
}

// Calendar is an immutable shift table with one weekly excluded day. It is
// passed explicitly through resource and scheduler construction so multiple
// calendars can coexist in one process.
type Calendar struct {
	shifts      map[ShiftID]Shift
	excludedDay time.Weekday
}

func New(shifts map[ShiftID]Shift, excludedDay time.Weekday) Calendar {
	cloned := make(map[ShiftID]Shift, len(shifts))
	for id, sh := range shifts {
		cloned[id] = sh
	}
	return Calendar{shifts: cloned, excludedDay: excludedDay}
}

// Default returns the production calendar: three back-to-back shifts covering
// the full day, with Sunday excluded.
func Default() Calendar {
	return New(map[ShiftID]Shift{
		1: {Start: NewClockTime(8, 0), End: NewClockTime(16, 30)},
		2: {Start: NewClockTime(16, 30), End: NewClockTime(1, 30)},
		3: {Start: NewClockTime(1, 30), End: NewClockTime(8, 0)},
	}, time.Sunday)
}

func (c Calendar) Shift(id ShiftID) (Shift, bool) {
	sh, ok := c.shifts[id]
	return sh, ok
}

// ShiftIDs returns all shift identifiers in ascending order.
func (c Calendar) ShiftIDs() []ShiftID {
	ids := make([]ShiftID, 0, len(c.shifts))
	for id := range c.shifts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (c Calendar) ExcludedDay() time.Weekday {
	return c.excludedDay
}

func (c Calendar) IsExcluded(t time.Time) bool {
	return t.Weekday() == c.excludedDay
}

// ShiftAt returns the shift covering the wall-clock time of t, scanning the
// table in ascending id order and returning the first match.
func (c Calendar) ShiftAt(t time.Time) (ShiftID, bool) {
	tod := sinceMidnight(t)
	for _, id := range c.ShiftIDs() {
		if c.shifts[id].Contains(tod) {
			return id, true
		}
	}
	return 0, false
}

// StartOfNextWorkingDay returns midnight of the first following day that is
// not the excluded day.
func (c Calendar) StartOfNextWorkingDay(t time.Time) time.Time {
	day := StartOfDay(t).AddDate(0, 0, 1)
	for day.Weekday() == c.excludedDay {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// NextShiftStart returns the first start of a shift in allowed strictly after
// the given instant, scanning day by day and skipping the excluded day. An
// overnight shift whose nominal start has already passed on day zero starts
// on the following day instead.
func (c Calendar) NextShiftStart(allowed []ShiftID, after time.Time) (time.Time, error) {
	ordered := c.shiftsByStart()
	for daysAhead := 0; daysAhead < searchHorizonDays; daysAhead++ {
		day := StartOfDay(after).AddDate(0, 0, daysAhead)
		if day.Weekday() == c.excludedDay {
			continue
		}
		for _, entry := range ordered {
			if !ContainsShift(allowed, entry.id) {
				continue
			}
			shiftStart := day.Add(entry.shift.Start.Duration())
			if entry.shift.Overnight() && daysAhead == 0 && sinceMidnight(after) > entry.shift.Start.Duration() {
				shiftStart = shiftStart.AddDate(0, 0, 1)
			}
			if shiftStart.After(after) {
				return shiftStart, nil
			}
		}
	}
	return time.Time{}, errors.FailedPrecondition(EntityCalendar,
		fmt.Sprintf("no operational shift found within %d days after %s", searchHorizonDays-1, after.Format("2006-01-02 15:04")))
}

// AddHours consumes the given number of working hours starting at start,
// restricted to the allowed shifts. Time on the excluded day or outside an
// allowed shift does not count; consumption splits across shift and day
// boundaries.
func (c Calendar) AddHours(start time.Time, hours float64, allowed []ShiftID) (time.Time, error) {
	current := start
	remaining := time.Duration(hours * float64(time.Hour))
	for remaining > 0 {
		if c.IsExcluded(current) {
			current = c.StartOfNextWorkingDay(current)
			continue
		}
		id, ok := c.ShiftAt(current)
		if !ok || !ContainsShift(allowed, id) {
			next, err := c.NextShiftStart(allowed, current)
			if err != nil {
				return time.Time{}, err
			}
			current = next
			continue
		}
		shiftEnd := c.shiftEndOn(StartOfDay(current), c.shifts[id])
		available := shiftEnd.Sub(current)
		if available <= 0 {
			next, err := c.NextShiftStart(allowed, current)
			if err != nil {
				return time.Time{}, err
			}
			current = next
			continue
		}
		if remaining <= available {
			current = current.Add(remaining)
			remaining = 0
		} else {
			current = shiftEnd
			remaining -= available
		}
	}
	return current, nil
}

// ShiftSpanOn returns the absolute window of a shift on the given day,
// extending the end by one day for overnight shifts.
func (c Calendar) ShiftSpanOn(day time.Time, id ShiftID) (time.Time, time.Time, bool) {
	sh, ok := c.shifts[id]
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	dayStart := StartOfDay(day)
	return dayStart.Add(sh.Start.Duration()), c.shiftEndOn(dayStart, sh), true
}

func (c Calendar) shiftEndOn(dayStart time.Time, sh Shift) time.Time {
	end := dayStart.Add(sh.End.Duration())
	if sh.Overnight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

type shiftEntry struct {
	id    ShiftID
	shift Shift
}

func (c Calendar) shiftsByStart() []shiftEntry {
	entries := make([]shiftEntry, 0, len(c.shifts))
	for id, sh := range c.shifts {
		entries = append(entries, shiftEntry{id: id, shift: sh})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].shift.Start != entries[j].shift.Start {
			return entries[i].shift.Start < entries[j].shift.Start
		}
		return entries[i].id < entries[j].id
	})
	return entries
}

func ContainsShift(ids []ShiftID, id ShiftID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sinceMidnight(t time.Time) time.Duration {
	return t.Sub(StartOfDay(t))
}
