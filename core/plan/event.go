package plan

import (
	"time"
)

// Event is one pending scheduling trigger: the project's next operation
// becomes ready at ReadyAt. Sequence is a monotonically increasing insertion
// counter breaking ties between equal ready times, so equally timed events
// are served first-inserted-first.
type Event struct {
	ReadyAt        time.Time
	Sequence       int
	Project        *Project
	OperationIndex int
}

// EventQueue is a min-heap over (ReadyAt, Sequence), for use with
// container/heap.
type EventQueue []*Event

func (q EventQueue) Len() int {
	return len(q)
}

func (q EventQueue) Less(i, j int) bool {
	if !q[i].ReadyAt.Equal(q[j].ReadyAt) {
		return q[i].ReadyAt.Before(q[j].ReadyAt)
	}
	return q[i].Sequence < q[j].Sequence
}

func (q EventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *EventQueue) Push(x interface{}) {
	*q = append(*q, x.(*Event))
}

func (q *EventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	event := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return event
}
