// Package dfs: event variants, control-flow signals, node states, and
// error definitions for the depth-first search engine.
package dfs

import (
	"errors"

	"github.com/katalvlaran/arenagraph/core"
)

// Node visitation states.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS, Times,
	// TopologicalSort, or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start handle does not address
	// a node in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrNilVisitor is returned when DFS is given a nil visitor.
	ErrNilVisitor = errors.New("dfs: visitor is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected is returned by TopologicalSort and HasCycle for
	// undirected graphs, where every edge would read as a trivial cycle.
	ErrUndirected = errors.New("dfs: directed graph required")
)

// ControlFlow is the visitor's answer to an event.
type ControlFlow uint8

const (
	// Continue proceeds with the traversal.
	Continue ControlFlow = iota

	// Break unwinds the entire traversal back to the caller immediately;
	// no further events are emitted.
	Break
)

// String implements fmt.Stringer for diagnostics.
func (c ControlFlow) String() string {
	if c == Break {
		return "Break"
	}

	return "Continue"
}

// Event is the closed set of occurrences a DFS reports. Dispatch with a
// type switch over the five variants: Discover, TreeEdge, BackEdge,
// CrossForwardEdge, Finish.
type Event interface {
	isEvent()
}

// Discover reports that Node was entered at clock value Time.
type Discover struct {
	Node core.NodeID
	Time int
}

// TreeEdge reports an edge explored into a not-yet-visited target;
// the edge joins the DFS tree.
type TreeEdge struct {
	Edge   core.EdgeID
	Source core.NodeID
	Target core.NodeID
}

// BackEdge reports an edge whose target is Gray: an ancestor still on
// the recursion stack. In a directed graph this witnesses a cycle.
type BackEdge struct {
	Edge   core.EdgeID
	Source core.NodeID
	Target core.NodeID
}

// CrossForwardEdge reports an edge whose target is Black: already
// finished, in this or an earlier subtree.
type CrossForwardEdge struct {
	Edge   core.EdgeID
	Source core.NodeID
	Target core.NodeID
}

// Finish reports that Node was fully explored at clock value Time.
type Finish struct {
	Node core.NodeID
	Time int
}

func (Discover) isEvent()         {}
func (TreeEdge) isEvent()         {}
func (BackEdge) isEvent()         {}
func (CrossForwardEdge) isEvent() {}
func (Finish) isEvent()           {}

// Visitor receives every traversal event and steers the walk.
type Visitor func(Event) ControlFlow
