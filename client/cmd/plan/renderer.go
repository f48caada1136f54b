package plan

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/goto/foundry/core/plan"
	"github.com/goto/foundry/core/plan/service"
)

const timestampFormat = "2006-01-02 15:04"

func stringifyProjectSchedule(scheduler *service.Scheduler) string {
	buff := &bytes.Buffer{}
	buff.WriteString("=== PROJECT SCHEDULE VIEW ===\n")

	for _, project := range scheduler.Projects() {
		buff.WriteString(fmt.Sprintf("\nProject %s [%s / %s]\n", project.Name(), project.Program(), project.DesignUnit()))

		table := tablewriter.NewWriter(buff)
		table.SetBorder(false)
		table.SetHeader([]string{"Operation", "Resource", "Start", "End", "Queue Hrs"})
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		prevEnd := project.StartTime()
		for _, op := range project.Operations() {
			resource, ok := scheduler.Resource(op.Resource)
			if !ok {
				continue
			}
			booking, ok := findBooking(resource, project.Name(), op.Name)
			if !ok {
				continue
			}
			queueHours := booking.Interval.Start().Sub(prevEnd).Hours()
			if queueHours < 0 {
				queueHours = 0
			}
			table.Append([]string{
				op.Name,
				op.Resource.String(),
				booking.Interval.Start().Format(timestampFormat),
				booking.Interval.End().Format(timestampFormat),
				fmt.Sprintf("%.1f", queueHours),
			})
			prevEnd = booking.Interval.End()
		}
		table.Render()

		if completion, ok := project.CompletionTime(); ok {
			buff.WriteString(fmt.Sprintf("%s COMPLETES: %s\n", project.Name(), completion.Format(timestampFormat)))
		}
	}
	return buff.String()
}

func stringifyResourceSchedules(resources []*plan.Resource, projects []*plan.Project) string {
	byName := make(map[plan.ProjectName]*plan.Project, len(projects))
	for _, project := range projects {
		byName[project.Name()] = project
	}
	ordered := make([]*plan.Resource, len(resources))
	copy(ordered, resources)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name() < ordered[j].Name() })

	buff := &bytes.Buffer{}
	buff.WriteString("=== RESOURCE SCHEDULE VIEW ===\n")
	for _, resource := range ordered {
		buff.WriteString(fmt.Sprintf("\nResource %s (%s) Schedule:\n", resource.Name(), resource.Type()))

		table := tablewriter.NewWriter(buff)
		table.SetBorder(false)
		table.SetHeader([]string{"Product", "Program", "DU", "Operation", "Start", "End", "Duration Hrs"})
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, booking := range resource.Timeline() {
			program, designUnit := "N/A", "N/A"
			if project, ok := byName[booking.Project]; ok {
				program, designUnit = project.Program(), project.DesignUnit()
			}
			table.Append([]string{
				booking.Project.String(),
				program,
				designUnit,
				booking.Operation,
				booking.Interval.Start().Format(timestampFormat),
				booking.Interval.End().Format(timestampFormat),
				fmt.Sprintf("%.1f", booking.Interval.Hours()),
			})
		}
		table.Render()
	}
	return buff.String()
}

func stringifyIdleReport(report map[plan.ResourceName]float64) string {
	names := make([]plan.ResourceName, 0, len(report))
	for name := range report {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	buff := &bytes.Buffer{}
	buff.WriteString("=== RESOURCE IDLE TIMES ===\n")
	table := tablewriter.NewWriter(buff)
	table.SetBorder(false)
	table.SetHeader([]string{"Resource", "Idle Hrs"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, name := range names {
		table.Append([]string{name.String(), fmt.Sprintf("%.2f", report[name])})
	}
	table.Render()
	return buff.String()
}

func findBooking(resource *plan.Resource, project plan.ProjectName, operation string) (plan.Booking, bool) {
	for _, booking := range resource.Timeline() {
		if booking.Project == project && booking.Operation == operation {
			return booking, true
		}
	}
	return plan.Booking{}, false
}
