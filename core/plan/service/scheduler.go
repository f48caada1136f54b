package service

import (
	"container/heap"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goto/salt/log"

	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/internal/errors"
	"github.com/goto/foundry/internal/lib/calendar"
	"github.com/goto/foundry/internal/lib/interval"
)

const EntitySchedule = "schedule"

// Scheduler places every project operation at the earliest feasible window
// on its target resource. One Run owns all state, projects are processed
// strictly in their own operation order while different projects interleave
// by ready time.
type Scheduler struct {
	l         log.Logger
	cal       calendar.Calendar
	resources map[plan.ResourceName]*plan.Resource
	projects  []*plan.Project

	queue    plan.EventQueue
	sequence int
}

// NewScheduler validates that every project operation references a known
// resource and orders projects by ascending priority, stable for equal
// priorities so input order breaks ties.
func NewScheduler(logger log.Logger, cal calendar.Calendar, resources []*plan.Resource, projects []*plan.Project) (*Scheduler, error) {
	byName := make(map[plan.ResourceName]*plan.Resource, len(resources))
	for _, res := range resources {
		if _, ok := byName[res.Name()]; ok {
			return nil, errors.InvalidArgument(plan.EntityResource, fmt.Sprintf("duplicate resource [%s]", res.Name()))
		}
		byName[res.Name()] = res
	}

	me := errors.NewMultiError("unresolvable resource references")
	for _, project := range projects {
		for _, op := range project.Operations() {
			if _, ok := byName[op.Resource]; !ok {
				me.Append(errors.NotFound(plan.EntityProject,
					fmt.Sprintf("project [%s] operation [%s] references unknown resource [%s]", project.Name(), op.Name, op.Resource)))
			}
		}
	}
	if err := me.ToErr(); err != nil {
		return nil, err
	}

	ordered := make([]*plan.Project, len(projects))
	copy(ordered, projects)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	return &Scheduler{
		l:         logger,
		cal:       cal,
		resources: byName,
		projects:  ordered,
	}, nil
}

// Projects returns the projects in scheduling priority order.
func (s *Scheduler) Projects() []*plan.Project {
	projects := make([]*plan.Project, len(s.projects))
	copy(projects, s.projects)
	return projects
}

func (s *Scheduler) Resource(name plan.ResourceName) (*plan.Resource, bool) {
	res, ok := s.resources[name]
	return res, ok
}

// Run drives the simulation to exhaustion of the event queue. It is
// deterministic: identical inputs produce identical timelines.
func (s *Scheduler) Run(ctx context.Context) error {
	for _, project := range s.projects {
		s.enqueue(project, project.StartTime())
	}

	for s.queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		event := heap.Pop(&s.queue).(*plan.Event)
		if event.OperationIndex != event.Project.CurrentIndex() {
			// stale event, cannot happen while one event per project holds
			continue
		}
		op, ok := event.Project.CurrentOperation()
		if !ok {
			continue
		}
		resource := s.resources[op.Resource]

		start, err := s.findEarliestSlot(resource, event.ReadyAt, op.Hours)
		if err != nil {
			return errors.AddErrContext(err, EntitySchedule,
				fmt.Sprintf("cannot place operation [%s] of project [%s] on resource [%s]", op.Name, event.Project.Name(), resource.Name()))
		}
		end, err := s.cal.AddHours(start, op.Hours, resource.OperationalShifts())
		if err != nil {
			return errors.AddErrContext(err, EntitySchedule,
				fmt.Sprintf("cannot place operation [%s] of project [%s] on resource [%s]", op.Name, event.Project.Name(), resource.Name()))
		}
		resource.Book(interval.NewInterval(start, end), event.Project.Name(), op.Name)
		s.l.Debug("booked operation [%s] of project [%s] on resource [%s]: %s - %s",
			op.Name, event.Project.Name(), resource.Name(),
			start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04"))

		if event.Project.Advance(end) {
			s.enqueue(event.Project, end)
		} else {
			s.l.Info("project [%s] completes at %s", event.Project.Name(), end.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func (s *Scheduler) enqueue(project *plan.Project, readyAt time.Time) {
	s.sequence++
	heap.Push(&s.queue, &plan.Event{
		ReadyAt:        readyAt,
		Sequence:       s.sequence,
		Project:        project,
		OperationIndex: project.CurrentIndex(),
	})
}

// findEarliestSlot probes contiguous free positions in increasing order: move
// off the excluded day, coalesce past the occupied run reachable from the
// candidate, snap to the next covered operational-shift instant, then
// tentatively consume the duration and accept the slot only if the resulting
// window is fully free. A failed probe restarts from the tentative end.
func (s *Scheduler) findEarliestSlot(resource *plan.Resource, readyAt time.Time, hours float64) (time.Time, error) {
	shifts := resource.OperationalShifts()
	candidate := readyAt
	for {
		if s.cal.IsExcluded(candidate) {
			candidate = s.cal.StartOfNextWorkingDay(candidate)
			continue
		}

		latestEnd := candidate
		for _, booked := range resource.Timeline() {
			if latestEnd.Before(booked.Interval.Start()) {
				break
			}
			if !booked.Interval.Start().After(latestEnd) && latestEnd.Before(booked.Interval.End()) {
				latestEnd = booked.Interval.End()
			}
		}
		candidate = latestEnd

		for {
			id, ok := s.cal.ShiftAt(candidate)
			if ok && calendar.ContainsShift(shifts, id) && !s.cal.IsExcluded(candidate) {
				break
			}
			next, err := s.cal.NextShiftStart(shifts, candidate)
			if err != nil {
				return time.Time{}, err
			}
			candidate = next
		}

		end, err := s.cal.AddHours(candidate, hours, shifts)
		if err != nil {
			return time.Time{}, err
		}
		if resource.IsAvailable(interval.NewInterval(candidate, end)) {
			return candidate, nil
		}
		candidate = end
	}
}
