// Package trails drives the connect-in-order task: Part A (numbers
// 1-25) and Part B (alternating numbers and letters). It validates
// clicks against the expected sequence and records errors and elapsed
// time.
package trails

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotStarted is returned when a click arrives before Start.
var ErrNotStarted = errors.New("trail sub-test not started")

// Node is one clickable dot on the canvas. Nodes are owned by the
// Validator for the lifetime of one sub-test and regenerated fresh for
// the next.
type Node struct {
	ID           string
	Position     Point
	Connected    bool
	IsNextTarget bool
	// FlaggedError marks the node for transient error feedback. The
	// presentation layer clears the flag after its feedback delay.
	FlaggedError bool
}

// Connection is one drawn edge between two connected nodes.
type Connection struct {
	FromID string
	ToID   string
}

// Result is the outcome of one completed or abandoned sub-test.
type Result struct {
	ElapsedSeconds float64
	ErrorCount     int
	Completed      bool
	Connections    []Connection
}

// ClickOutcome describes what a click did.
type ClickOutcome int

const (
	// Advanced means the correct target was hit and the pointer moved on.
	Advanced ClickOutcome = iota
	// ErrorFlagged means a wrong node was clicked; the target is unchanged.
	ErrorFlagged
	// Completed means the final target was hit and the clock stopped.
	Completed
)

// Validator holds the state of one sub-test (Part A or Part B).
type Validator struct {
	sequence    []string
	nodes       []*Node
	index       map[string]*Node
	targetIdx   int
	errorCount  int
	connections []Connection
	started     bool
	completed   bool
	startedAt   time.Time
	stoppedAt   time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewValidator creates a Validator for the given expected sequence and
// node positions. positions must have one entry per sequence element.
func NewValidator(sequence []string, positions []Point) *Validator {
	v := &Validator{now: time.Now}
	v.Reset(sequence, positions)
	return v
}

// Reset discards all sub-test state and installs a fresh sequence and
// node set. The first sequence element becomes the target.
func (v *Validator) Reset(sequence []string, positions []Point) {
	v.sequence = append([]string(nil), sequence...)
	v.nodes = make([]*Node, len(sequence))
	v.index = make(map[string]*Node, len(sequence))
	for i, id := range sequence {
		var p Point
		if i < len(positions) {
			p = positions[i]
		}
		n := &Node{ID: id, Position: p}
		v.nodes[i] = n
		v.index[id] = n
	}
	v.targetIdx = 0
	v.errorCount = 0
	v.connections = nil
	v.started = false
	v.completed = false
	v.startedAt = time.Time{}
	v.stoppedAt = time.Time{}
	if len(v.nodes) > 0 {
		v.nodes[0].IsNextTarget = true
	}
}

// Start begins the elapsed-time clock. Timing is independent of the
// first click.
func (v *Validator) Start() {
	if v.started {
		return
	}
	v.started = true
	v.startedAt = v.now()
}

// ClickNode processes a click on nodeID. Clicks before Start are
// rejected with ErrNotStarted and have no side effects.
func (v *Validator) ClickNode(nodeID string) (ClickOutcome, error) {
	if !v.started {
		return ErrorFlagged, ErrNotStarted
	}
	if v.completed {
		return Completed, nil
	}

	node, ok := v.index[nodeID]
	if !ok {
		return ErrorFlagged, fmt.Errorf("unknown node %q", nodeID)
	}

	target := v.sequence[v.targetIdx]
	if nodeID != target {
		v.errorCount++
		node.FlaggedError = true
		return ErrorFlagged, nil
	}

	node.Connected = true
	node.IsNextTarget = false
	if v.targetIdx > 0 {
		v.connections = append(v.connections, Connection{
			FromID: v.sequence[v.targetIdx-1],
			ToID:   nodeID,
		})
	}

	v.targetIdx++
	if v.targetIdx >= len(v.sequence) {
		v.completed = true
		v.stoppedAt = v.now()
		return Completed, nil
	}

	v.index[v.sequence[v.targetIdx]].IsNextTarget = true
	return Advanced, nil
}

// ClearErrorFlag resets the transient error marker on a node, called by
// the presentation layer after its feedback delay.
func (v *Validator) ClearErrorFlag(nodeID string) {
	if n, ok := v.index[nodeID]; ok {
		n.FlaggedError = false
	}
}

// ElapsedSeconds reports time since Start; after completion the clock
// is frozen at the completion instant.
func (v *Validator) ElapsedSeconds() float64 {
	if !v.started {
		return 0
	}
	end := v.now()
	if v.completed {
		end = v.stoppedAt
	}
	return end.Sub(v.startedAt).Seconds()
}

// Completed reports whether the full sequence has been connected.
func (v *Validator) Completed() bool {
	return v.completed
}

// Target returns the ID the next correct click must hit, or "" when the
// sub-test is complete.
func (v *Validator) Target() string {
	if v.completed || v.targetIdx >= len(v.sequence) {
		return ""
	}
	return v.sequence[v.targetIdx]
}

// Nodes returns the node set for rendering.
func (v *Validator) Nodes() []*Node {
	return v.nodes
}

// Result snapshots the sub-test outcome. Connections are copied so the
// caller cannot mutate validator state.
func (v *Validator) Result() Result {
	conns := make([]Connection, len(v.connections))
	copy(conns, v.connections)
	return Result{
		ElapsedSeconds: v.ElapsedSeconds(),
		ErrorCount:     v.errorCount,
		Completed:      v.completed,
		Connections:    conns,
	}
}

// PartASequence is the numeric sequence "1".."25".
func PartASequence() []string {
	out := make([]string, 25)
	for i := range out {
		out[i] = fmt.Sprintf("%d", i+1)
	}
	return out
}

// PartBSequence interleaves 13 numbers with 12 letters:
// 1, A, 2, B, ..., 12, L, 13.
func PartBSequence() []string {
	var out []string
	for i := 1; i <= 13; i++ {
		out = append(out, fmt.Sprintf("%d", i))
		if i <= 12 {
			out = append(out, string(rune('A'+i-1)))
		}
	}
	return out
}

// ExecutiveScore is Part B completion time minus Part A completion
// time. It is undefined (ok=false) until both sub-tests completed.
func ExecutiveScore(partA, partB Result) (float64, bool) {
	if !partA.Completed || !partB.Completed {
		return 0, false
	}
	return partB.ElapsedSeconds - partA.ElapsedSeconds, true
}
