// Package dfs: the recursive event-visitor engine.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// walker encapsulates state for one traversal: the three-color state
// map and the shared discover/finish clock.
type walker[N, E any] struct {
	graph *core.Graph[N, E]
	visit Visitor
	state map[core.NodeID]int
	clock int
}

// DFS performs a depth-first search on g from start, delivering events
// to visit. The traversal explores adjacency in chain order (most
// recently added edge first) and classifies every explored edge by the
// state of its far endpoint: White → TreeEdge (and recursion), Gray →
// BackEdge, Black → CrossForwardEdge.
//
// The returned ControlFlow is the visitor's final signal: Break if the
// visitor cancelled (the traversal stopped at that exact event), or
// Continue if the walk ran to completion.
//
// Returns ErrGraphNil, ErrNilVisitor, or ErrStartNotFound for invalid
// input. Cycles are not errors; they surface as BackEdge events.
func DFS[N, E any](g *core.Graph[N, E], start core.NodeID, visit Visitor) (ControlFlow, error) {
	// 1. Validate inputs.
	if g == nil {
		return Continue, ErrGraphNil
	}
	if visit == nil {
		return Continue, ErrNilVisitor
	}
	if start == core.NoNode || start.Index() >= g.NodeCount() {
		return Continue, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 2. Run the machine.
	w := &walker[N, E]{
		graph: g,
		visit: visit,
		state: make(map[core.NodeID]int, g.NodeCount()),
	}

	return w.traverse(start), nil
}

// traverse visits u and recurses into its White neighbors. Every event's
// ControlFlow is checked immediately; Break propagates up through all
// recursion levels without emitting anything further.
func (w *walker[N, E]) traverse(u core.NodeID) ControlFlow {
	// 1. Discover u: mark Gray, stamp and advance the clock.
	w.state[u] = Gray
	t := w.clock
	w.clock++
	if w.visit(Discover{Node: u, Time: t}) == Break {
		return Break
	}

	// 2. Explore the adjacency in chain order.
	nbs := w.graph.Neighbors(u)
	for e, v, ok := nbs.Next(); ok; e, v, ok = nbs.Next() {
		switch w.state[v] {
		case White:
			if w.visit(TreeEdge{Edge: e, Source: u, Target: v}) == Break {
				return Break
			}
			if w.traverse(v) == Break {
				return Break
			}
		case Gray:
			if w.visit(BackEdge{Edge: e, Source: u, Target: v}) == Break {
				return Break
			}
		default: // Black
			if w.visit(CrossForwardEdge{Edge: e, Source: u, Target: v}) == Break {
				return Break
			}
		}
	}

	// 3. Finish u: mark Black, stamp and advance the clock.
	w.state[u] = Black
	t = w.clock
	w.clock++
	if w.visit(Finish{Node: u, Time: t}) == Break {
		return Break
	}

	return Continue
}
