package plan

import (
	"time"

	"github.com/goto/foundry/internal/errors"
)

const EntityProject = "project"

const (
	StatePending  State = "pending"
	StateComplete State = "complete"
)

type State string

func (s State) String() string {
	return string(s)
}

type ProjectName string

func ProjectNameFrom(name string) (ProjectName, error) {
	if name == "" {
		return "", errors.InvalidArgument(EntityProject, "project name is empty")
	}
	return ProjectName(name), nil
}

func (p ProjectName) String() string {
	return string(p)
}

// Operation is one step of a project, bound to exactly one resource.
type Operation struct {
	Name     string
	Resource ResourceName
	Hours    float64
}

// Project is one prioritized job with a strict operation sequence. Only the
// scheduler mutates it, by advancing the cursor one placement at a time.
type Project struct {
	name       ProjectName
	program    string
	designUnit string
	priority   int
	start      time.Time
	operations []Operation

	cursor     int
	completion time.Time
}

func NewProject(name, program, designUnit string, priority int, start time.Time, operations []Operation) (*Project, error) {
	projectName, err := ProjectNameFrom(name)
	if err != nil {
		return nil, err
	}
	if len(operations) == 0 {
		return nil, errors.InvalidArgument(EntityProject, "project ["+name+"] has no operations")
	}
	cloned := make([]Operation, len(operations))
	copy(cloned, operations)
	return &Project{
		name:       projectName,
		program:    program,
		designUnit: designUnit,
		priority:   priority,
		start:      start,
		operations: cloned,
	}, nil
}

func (p *Project) Name() ProjectName {
	return p.name
}

func (p *Project) Program() string {
	return p.program
}

func (p *Project) DesignUnit() string {
	return p.designUnit
}

func (p *Project) Priority() int {
	return p.priority
}

func (p *Project) StartTime() time.Time {
	return p.start
}

func (p *Project) Operations() []Operation {
	operations := make([]Operation, len(p.operations))
	copy(operations, p.operations)
	return operations
}

func (p *Project) OperationCount() int {
	return len(p.operations)
}

// CurrentIndex returns the cursor position, the count of placed operations.
func (p *Project) CurrentIndex() int {
	return p.cursor
}

// CurrentOperation returns the next operation to place, false when all
// operations have been placed.
func (p *Project) CurrentOperation() (Operation, bool) {
	if p.cursor >= len(p.operations) {
		return Operation{}, false
	}
	return p.operations[p.cursor], true
}

// Advance moves the cursor past the operation just placed, recording the
// completion time once the sequence is exhausted. It returns true while
// operations remain.
func (p *Project) Advance(end time.Time) bool {
	p.cursor++
	if p.cursor >= len(p.operations) {
		p.completion = end
		return false
	}
	return true
}

func (p *Project) State() State {
	if p.cursor >= len(p.operations) {
		return StateComplete
	}
	return StatePending
}

// CompletionTime returns the booked end of the final operation, false while
// the project is still pending.
func (p *Project) CompletionTime() (time.Time, bool) {
	if p.State() != StateComplete {
		return time.Time{}, false
	}
	return p.completion, true
}
