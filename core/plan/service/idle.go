package service

import (
	"math"

	"github.com/goto/salt/log"

	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/internal/lib/calendar"
	"github.com/goto/foundry/internal/lib/interval"
)

// IdleService sums the operational-shift hours a resource leaves uncovered
// between its first and last booked operation.
type IdleService struct {
	l   log.Logger
	cal calendar.Calendar
}

func NewIdleService(logger log.Logger, cal calendar.Calendar) *IdleService {
	return &IdleService{
		l:   logger,
		cal: cal,
	}
}

// IdleHours walks the scan window day by day, skipping the excluded day, and
// accumulates per shift the span hours not covered by any booking. The
// result is rounded to two decimals; an empty timeline reports zero.
func (s *IdleService) IdleHours(resource *plan.Resource) float64 {
	timeline := resource.Timeline()
	if len(timeline) == 0 {
		return 0
	}
	windowStart, ok := resource.FirstShiftStart()
	if !ok {
		return 0
	}
	windowEnd, ok := resource.LastShiftEnd()
	if !ok {
		return 0
	}

	idle := 0.0
	current := windowStart
	for current.Before(windowEnd) {
		if s.cal.IsExcluded(current) {
			current = s.cal.StartOfNextWorkingDay(current)
			continue
		}
		for _, id := range resource.OperationalShifts() {
			spanStart, spanEnd, ok := s.cal.ShiftSpanOn(current, id)
			if !ok {
				continue
			}
			span := interval.NewInterval(spanStart, spanEnd)
			shiftIdle := span.Hours()
			for _, booked := range timeline {
				shiftIdle -= span.OverlapHours(booked.Interval)
			}
			if shiftIdle > 0 {
				idle += shiftIdle
			}
		}
		current = current.AddDate(0, 0, 1)
	}
	return math.Round(idle*100) / 100
}

// Report returns the idle hours per resource name.
func (s *IdleService) Report(resources []*plan.Resource) map[plan.ResourceName]float64 {
	report := make(map[plan.ResourceName]float64, len(resources))
	for _, resource := range resources {
		hours := s.IdleHours(resource)
		report[resource.Name()] = hours
		s.l.Debug("resource [%s] idle for %.2f hours", resource.Name(), hours)
	}
	return report
}
