package service_test

import (
	"context"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"

	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/core/plan/service"
	"github.com/goto/foundry/internal/lib/calendar"
	"github.com/goto/foundry/internal/lib/interval"
)

func TestIdleService(t *testing.T) {
	logger := log.NewNoop()
	cal := calendar.Default()
	idleService := service.NewIdleService(logger, cal)

	t.Run("IdleHours", func(t *testing.T) {
		t.Run("reports zero for an empty timeline", func(t *testing.T) {
			m1 := mustResource(t, "M1", 1)
			assert.Equal(t, 0.0, idleService.IdleHours(m1))
		})

		t.Run("sums uncovered hours within one shift", func(t *testing.T) {
			m1 := mustResource(t, "M1", 1)
			m1.Book(interval.NewInterval(at(monday, 8, 0), at(monday, 12, 0)), "P1", "Cutting")
			m1.Book(interval.NewInterval(at(monday, 13, 0), at(monday, 16, 30)), "P1", "Welding")

			assert.Equal(t, 1.0, idleService.IdleHours(m1))
		})

		t.Run("skips the excluded day across a weekend", func(t *testing.T) {
			m1 := mustResource(t, "M1", 1)
			m1.Book(interval.NewInterval(at(saturday, 8, 0), at(saturday, 10, 0)), "P1", "Cutting")
			m1.Book(interval.NewInterval(at(monday, 8, 0), at(monday, 9, 0)), "P1", "Welding")

			// saturday leaves 6.5 of 8.5 hours uncovered, monday 7.5
			assert.Equal(t, 14.0, idleService.IdleHours(m1))
		})
	})

	t.Run("Report", func(t *testing.T) {
		t.Run("covers every resource including unbooked ones", func(t *testing.T) {
			m1 := mustResource(t, "M1", 1)
			m1.Book(interval.NewInterval(at(monday, 8, 0), at(monday, 16, 30)), "P1", "Cutting")
			m2 := mustResource(t, "M2", 1)

			report := idleService.Report([]*plan.Resource{m1, m2})
			assert.Equal(t, 0.0, report["M1"])
			assert.Equal(t, 0.0, report["M2"])
		})
	})

	t.Run("busy plus idle hours close over the scan window", func(t *testing.T) {
		ctx := context.Background()
		m1 := mustResource(t, "M1", 1)
		p1 := mustProject(t, "P1", 1, at(monday, 8, 0),
			plan.Operation{Name: "Cutting", Resource: "M1", Hours: 4},
		)
		scheduler, err := service.NewScheduler(logger, cal, []*plan.Resource{m1}, []*plan.Project{p1})
		assert.NoError(t, err)
		assert.NoError(t, scheduler.Run(ctx))

		booked := 0.0
		for _, b := range m1.Timeline() {
			booked += b.Interval.Hours()
		}
		idle := idleService.IdleHours(m1)
		windowStart, _ := m1.FirstShiftStart()
		windowEnd, _ := m1.LastShiftEnd()
		assert.Equal(t, at(monday, 8, 0), windowStart)
		assert.Equal(t, at(monday, 16, 30), windowEnd)
		assert.InDelta(t, 8.5, booked+idle, 0.01)
	})
}
