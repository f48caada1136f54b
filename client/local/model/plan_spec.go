package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/internal/errors"
	"github.com/goto/foundry/internal/lib/calendar"
)

const EntityPlanSpec = "plan_spec"

const startDateLayout = "2006-01-02"

// PlanSpec is the on-disk definition of a scheduling problem: the resources
// of the shop and the prioritized projects to place on them.
type PlanSpec struct {
	Version     int              `yaml:"version"`
	Machines    []MachineSpec    `yaml:"machines"`
	WorkCenters []WorkCenterSpec `yaml:"work_centers"`
	Projects    []ProjectSpec    `yaml:"projects"`
}

type MachineSpec struct {
	Name              string `yaml:"name"`
	OperationalShifts []int  `yaml:"operational_shifts"`
}

func (m MachineSpec) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.OperationalShifts, validation.Required, validation.Each(validation.Min(1))),
	)
}

// WorkCenterSpec carries per-skill staffing counts. They are reported but
// never consulted by scheduling, a work center is a serial unit like a
// machine.
type WorkCenterSpec struct {
	Name              string         `yaml:"name"`
	Staffing          map[string]int `yaml:"staffing"`
	OperationalShifts []int          `yaml:"operational_shifts"`
}

func (w WorkCenterSpec) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Name, validation.Required),
		validation.Field(&w.OperationalShifts, validation.Required, validation.Each(validation.Min(1))),
		validation.Field(&w.Staffing, validation.Each(validation.Min(0))),
	)
}

// ProjectSpec keeps the operation attributes as parallel arrays, matching
// the shape planners maintain in their sheets.
type ProjectSpec struct {
	Product    string    `yaml:"product_name"`
	Program    string    `yaml:"program"`
	DesignUnit string    `yaml:"design_unit"`
	Priority   int       `yaml:"priority"`
	StartDate  string    `yaml:"start_date"`
	StartHour  float64   `yaml:"start_time"`
	Operations []string  `yaml:"operations"`
	Sequence   []string  `yaml:"operation_sequence"`
	Durations  []float64 `yaml:"operation_times"`
}

func (p ProjectSpec) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Product, validation.Required),
		validation.Field(&p.Priority, validation.Min(0)),
		validation.Field(&p.StartDate, validation.Required, validation.Date(startDateLayout)),
		validation.Field(&p.StartHour, validation.Min(0.0), validation.Max(24.0)),
		validation.Field(&p.Operations, validation.Required),
		validation.Field(&p.Sequence, validation.Required),
		validation.Field(&p.Durations, validation.Required, validation.Each(validation.Min(0.0).Exclusive())),
	); err != nil {
		return errors.Wrap(EntityPlanSpec, fmt.Sprintf("project [%s]", p.Product), err)
	}
	if len(p.Operations) != len(p.Sequence) || len(p.Operations) != len(p.Durations) {
		return errors.InvalidArgument(EntityPlanSpec, fmt.Sprintf(
			"project [%s]: operations, operation_sequence and operation_times must have the same length", p.Product))
	}
	return nil
}

func (s *PlanSpec) Validate() error {
	me := errors.NewMultiError("invalid plan spec")
	for _, machine := range s.Machines {
		me.Append(machine.Validate())
	}
	for _, workCenter := range s.WorkCenters {
		me.Append(workCenter.Validate())
	}
	for _, project := range s.Projects {
		me.Append(project.Validate())
	}
	return me.ToErr()
}

// ToResources converts machines and work centers into the unified resource
// set, all bound to the given calendar.
func (s *PlanSpec) ToResources(cal calendar.Calendar) ([]*plan.Resource, error) {
	resources := make([]*plan.Resource, 0, len(s.Machines)+len(s.WorkCenters))
	for _, machine := range s.Machines {
		res, err := plan.NewResource(machine.Name, plan.ResourceTypeMachine, toShiftIDs(machine.OperationalShifts), nil, cal)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	for _, workCenter := range s.WorkCenters {
		res, err := plan.NewResource(workCenter.Name, plan.ResourceTypeWorkCenter, toShiftIDs(workCenter.OperationalShifts), workCenter.Staffing, cal)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// ToProjects converts project specs into domain projects, zipping the
// parallel operation arrays. Start timestamps are interpreted in loc.
func (s *PlanSpec) ToProjects(loc *time.Location) ([]*plan.Project, error) {
	projects := make([]*plan.Project, 0, len(s.Projects))
	for _, spec := range s.Projects {
		day, err := time.ParseInLocation(startDateLayout, spec.StartDate, loc)
		if err != nil {
			return nil, errors.InvalidArgument(EntityPlanSpec, fmt.Sprintf(
				"project [%s]: invalid start_date [%s], expected format [%s]", spec.Product, spec.StartDate, startDateLayout))
		}
		start := day.Add(time.Duration(spec.StartHour * float64(time.Hour)))

		operations := make([]plan.Operation, len(spec.Operations))
		for i, name := range spec.Operations {
			operations[i] = plan.Operation{
				Name:     name,
				Resource: plan.ResourceName(spec.Sequence[i]),
				Hours:    spec.Durations[i],
			}
		}
		project, err := plan.NewProject(spec.Product, spec.Program, spec.DesignUnit, spec.Priority, start, operations)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func toShiftIDs(ids []int) []calendar.ShiftID {
	shiftIDs := make([]calendar.ShiftID, len(ids))
	for i, id := range ids {
		shiftIDs[i] = calendar.ShiftID(id)
	}
	return shiftIDs
}
