package service_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"

	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/core/plan/service"
	"github.com/goto/foundry/internal/lib/calendar"
)

// Generates a randomized but seeded project mix and checks the structural
// invariants every run must uphold, whatever the contention pattern.
func TestSchedulerInvariants(t *testing.T) {
	ctx := context.Background()
	logger := log.NewNoop()
	cal := calendar.Default()
	rnd := rand.New(rand.NewSource(42))

	shiftSets := [][]calendar.ShiftID{{1}, {1, 2}, {1, 2, 3}}
	resources := make([]*plan.Resource, 0, len(shiftSets))
	for i, shifts := range shiftSets {
		resources = append(resources, mustResource(t, fmt.Sprintf("M%d", i+1), shifts...))
	}

	projects := make([]*plan.Project, 0, 6)
	for i := 0; i < 6; i++ {
		opCount := 1 + rnd.Intn(4)
		operations := make([]plan.Operation, opCount)
		for j := range operations {
			operations[j] = plan.Operation{
				Name:     fmt.Sprintf("Op-%d", j+1),
				Resource: resources[rnd.Intn(len(resources))].Name(),
				Hours:    float64(1 + rnd.Intn(6)),
			}
		}
		start := at(monday, 8, 0)
		projects = append(projects, mustProject(t, fmt.Sprintf("P%d", i+1), 1+rnd.Intn(3), start, operations...))
	}

	scheduler, err := service.NewScheduler(logger, cal, resources, projects)
	assert.NoError(t, err)
	assert.NoError(t, scheduler.Run(ctx))

	t.Run("no resource timeline overlaps", func(t *testing.T) {
		for _, res := range resources {
			timeline := res.Timeline()
			for i := 1; i < len(timeline); i++ {
				assert.False(t, timeline[i-1].Interval.End().After(timeline[i].Interval.Start()),
					"resource %s bookings %d and %d overlap", res.Name(), i-1, i)
			}
		}
	})

	t.Run("operations of a project never start before the previous ends", func(t *testing.T) {
		for _, project := range projects {
			prevEnd := project.StartTime()
			for _, op := range project.Operations() {
				res, ok := scheduler.Resource(op.Resource)
				assert.True(t, ok)
				found := false
				for _, booking := range res.Timeline() {
					if booking.Project == project.Name() && booking.Operation == op.Name {
						assert.False(t, booking.Interval.Start().Before(prevEnd),
							"project %s operation %s starts before previous end", project.Name(), op.Name)
						prevEnd = booking.Interval.End()
						found = true
						break
					}
				}
				assert.True(t, found, "project %s operation %s was never booked", project.Name(), op.Name)
			}
			_, ok := project.CompletionTime()
			assert.True(t, ok)
		}
	})

	t.Run("bookings start inside an operational shift off the excluded day", func(t *testing.T) {
		for _, res := range resources {
			for _, booking := range res.Timeline() {
				start := booking.Interval.Start()
				assert.False(t, cal.IsExcluded(start), "booking on %s starts on the excluded day", res.Name())
				id, ok := cal.ShiftAt(start)
				assert.True(t, ok)
				assert.True(t, calendar.ContainsShift(res.OperationalShifts(), id),
					"booking on %s starts outside its operational shifts", res.Name())
			}
		}
	})
}
