package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/goto/foundry/client/local/model"
	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/internal/lib/calendar"
)

const validSpec = `
version: 1
machines:
  - name: M1
    operational_shifts: [1, 2]
  - name: M2
    operational_shifts: [1]
work_centers:
  - name: W1
    staffing:
      fitters: 2
      welders: 3
    operational_shifts: [1, 2, 3]
projects:
  - product_name: Engine Block V6
    program: PGMA-123
    design_unit: DU-456
    priority: 1
    start_date: 2025-04-14
    start_time: 8
    operations: [Cutting, Welding]
    operation_sequence: [M1, W1]
    operation_times: [9, 5]
`

func parseSpec(t *testing.T, raw string) *model.PlanSpec {
	t.Helper()
	var spec model.PlanSpec
	assert.NoError(t, yaml.Unmarshal([]byte(raw), &spec))
	return &spec
}

func TestPlanSpec(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts a complete spec", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			assert.NoError(t, spec.Validate())
		})
		t.Run("rejects a machine without a name", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			spec.Machines[0].Name = ""
			assert.Error(t, spec.Validate())
		})
		t.Run("rejects a machine without shifts", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			spec.Machines[0].OperationalShifts = nil
			assert.Error(t, spec.Validate())
		})
		t.Run("rejects mismatched operation arrays", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			spec.Projects[0].Durations = []float64{9}
			err := spec.Validate()
			assert.Error(t, err)
			assert.ErrorContains(t, err, "Engine Block V6")
			assert.ErrorContains(t, err, "same length")
		})
		t.Run("rejects a non positive duration", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			spec.Projects[0].Durations = []float64{9, 0}
			assert.Error(t, spec.Validate())
		})
		t.Run("rejects a malformed start date", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			spec.Projects[0].StartDate = "14-04-2025"
			assert.Error(t, spec.Validate())
		})
	})

	t.Run("ToResources", func(t *testing.T) {
		t.Run("unifies machines and work centers", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			resources, err := spec.ToResources(calendar.Default())
			assert.NoError(t, err)
			assert.Len(t, resources, 3)

			assert.Equal(t, plan.ResourceName("M1"), resources[0].Name())
			assert.Equal(t, plan.ResourceTypeMachine, resources[0].Type())
			assert.Equal(t, []calendar.ShiftID{1, 2}, resources[0].OperationalShifts())

			assert.Equal(t, plan.ResourceName("W1"), resources[2].Name())
			assert.Equal(t, plan.ResourceTypeWorkCenter, resources[2].Type())
			assert.Equal(t, map[string]int{"fitters": 2, "welders": 3}, resources[2].Staffing())
		})
	})

	t.Run("ToProjects", func(t *testing.T) {
		t.Run("zips the parallel operation arrays", func(t *testing.T) {
			spec := parseSpec(t, validSpec)
			projects, err := spec.ToProjects(time.UTC)
			assert.NoError(t, err)
			assert.Len(t, projects, 1)

			project := projects[0]
			assert.Equal(t, plan.ProjectName("Engine Block V6"), project.Name())
			assert.Equal(t, time.Date(2025, 4, 14, 8, 0, 0, 0, time.UTC), project.StartTime())

			operations := project.Operations()
			assert.Len(t, operations, 2)
			assert.Equal(t, plan.Operation{Name: "Cutting", Resource: "M1", Hours: 9}, operations[0])
			assert.Equal(t, plan.Operation{Name: "Welding", Resource: "W1", Hours: 5}, operations[1])
		})
	})
}
