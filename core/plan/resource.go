package plan

import (
	"sort"
	"time"

	"github.com/goto/foundry/internal/errors"
	"github.com/goto/foundry/internal/lib/calendar"
	"github.com/goto/foundry/internal/lib/interval"
)

const (
	EntityResource = "resource"

	// boundarySearchDays bounds the scan for the shift boundary enclosing a
	// timeline edge.
	boundarySearchDays = 7
)

type ResourceType string

const (
	ResourceTypeMachine    ResourceType = "machine"
	ResourceTypeWorkCenter ResourceType = "work_center"
)

func (r ResourceType) String() string {
	return string(r)
}

type ResourceName string

func ResourceNameFrom(name string) (ResourceName, error) {
	if name == "" {
		return "", errors.InvalidArgument(EntityResource, "resource name is empty")
	}
	return ResourceName(name), nil
}

func (r ResourceName) String() string {
	return string(r)
}

// Booking is one occupied window on a resource timeline, tagged with the
// owning project and operation.
type Booking struct {
	Interval  interval.Interval
	Project   ProjectName
	Operation string
}

// Resource is a single serial unit of capacity. Its type and staffing counts
// are descriptive only, scheduling treats every resource the same way.
type Resource struct {
	name     ResourceName
	typ      ResourceType
	shifts   []calendar.ShiftID
	staffing map[string]int
	cal      calendar.Calendar

	timeline []Booking
}

func NewResource(name string, typ ResourceType, shifts []calendar.ShiftID, staffing map[string]int, cal calendar.Calendar) (*Resource, error) {
	resourceName, err := ResourceNameFrom(name)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, errors.InvalidArgument(EntityResource, "resource ["+name+"] has no operational shifts")
	}
	cloned := make([]calendar.ShiftID, len(shifts))
	copy(cloned, shifts)
	sort.Slice(cloned, func(i, j int) bool { return cloned[i] < cloned[j] })

	var counts map[string]int
	if len(staffing) > 0 {
		counts = make(map[string]int, len(staffing))
		for skill, count := range staffing {
			counts[skill] = count
		}
	}
	return &Resource{
		name:     resourceName,
		typ:      typ,
		shifts:   cloned,
		staffing: counts,
		cal:      cal,
	}, nil
}

func (r *Resource) Name() ResourceName {
	return r.name
}

func (r *Resource) Type() ResourceType {
	return r.typ
}

func (r *Resource) Calendar() calendar.Calendar {
	return r.cal
}

// OperationalShifts returns the shift ids the resource runs on, ascending.
func (r *Resource) OperationalShifts() []calendar.ShiftID {
	ids := make([]calendar.ShiftID, len(r.shifts))
	copy(ids, r.shifts)
	return ids
}

// Staffing returns the declared per-skill headcount. The scheduler never
// consults it, every resource is a serial unit with capacity one.
func (r *Resource) Staffing() map[string]int {
	if r.staffing == nil {
		return nil
	}
	counts := make(map[string]int, len(r.staffing))
	for skill, count := range r.staffing {
		counts[skill] = count
	}
	return counts
}

// IsAvailable reports whether no existing booking overlaps the window.
func (r *Resource) IsAvailable(window interval.Interval) bool {
	for _, booked := range r.timeline {
		if booked.Interval.Overlaps(window) {
			return false
		}
	}
	return true
}

// Book appends a booking and keeps the timeline sorted by start time. The
// caller must have verified availability, overlaps are not re-checked here.
func (r *Resource) Book(window interval.Interval, project ProjectName, operation string) {
	r.timeline = append(r.timeline, Booking{
		Interval:  window,
		Project:   project,
		Operation: operation,
	})
	sort.SliceStable(r.timeline, func(i, j int) bool {
		return r.timeline[i].Interval.Start().Before(r.timeline[j].Interval.Start())
	})
}

// Timeline returns a copy of the bookings sorted by start time.
func (r *Resource) Timeline() []Booking {
	bookings := make([]Booking, len(r.timeline))
	copy(bookings, r.timeline)
	return bookings
}

// FirstShiftStart returns the start of the operational shift containing or
// immediately preceding the earliest booking, searching up to a week back and
// skipping the excluded day. False when the timeline is empty.
func (r *Resource) FirstShiftStart() (time.Time, bool) {
	if len(r.timeline) == 0 {
		return time.Time{}, false
	}
	firstStart := r.timeline[0].Interval.Start()
	for daysBack := 0; daysBack < boundarySearchDays; daysBack++ {
		day := calendar.StartOfDay(firstStart).AddDate(0, 0, -daysBack)
		if r.cal.IsExcluded(day) {
			continue
		}
		for _, id := range r.shifts {
			sh, ok := r.cal.Shift(id)
			if !ok {
				continue
			}
			shiftStart := day.Add(sh.Start.Duration())
			if !shiftStart.After(firstStart) {
				return shiftStart, true
			}
		}
	}
	return time.Time{}, false
}

// LastShiftEnd returns the end of the operational shift containing or
// immediately following the latest booking end, searching up to a week
// forward and skipping the excluded day. False when the timeline is empty.
func (r *Resource) LastShiftEnd() (time.Time, bool) {
	if len(r.timeline) == 0 {
		return time.Time{}, false
	}
	lastEnd := r.timeline[len(r.timeline)-1].Interval.End()
	for daysAhead := 0; daysAhead < boundarySearchDays; daysAhead++ {
		day := calendar.StartOfDay(lastEnd).AddDate(0, 0, daysAhead)
		if r.cal.IsExcluded(day) {
			continue
		}
		for i := len(r.shifts) - 1; i >= 0; i-- {
			_, shiftEnd, ok := r.cal.ShiftSpanOn(day, r.shifts[i])
			if !ok {
				continue
			}
			if !shiftEnd.Before(lastEnd) {
				return shiftEnd, true
			}
		}
	}
	return time.Time{}, false
}
