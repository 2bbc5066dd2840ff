// Package dfs: cycle detection as a back-edge probe over the DFS forest.
package dfs

import "github.com/katalvlaran/arenagraph/core"

// HasCycle reports whether the directed graph g contains a cycle.
// It runs the event engine from every still-White node and stops at the
// first BackEdge. Self-loops count as cycles.
//
// Returns ErrGraphNil for a nil graph and ErrUndirected for an
// undirected one (where every edge reads back as a trivial cycle).
//
// Complexity: O(V + E) time, O(V) memory.
func HasCycle[N, E any](g *core.Graph[N, E]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, ErrUndirected
	}

	w := &walker[N, E]{
		graph: g,
		state: make(map[core.NodeID]int, g.NodeCount()),
	}
	w.visit = func(ev Event) ControlFlow {
		if _, back := ev.(BackEdge); back {
			return Break
		}

		return Continue
	}

	for i := 0; i < g.NodeCount(); i++ {
		id := core.NodeID(i)
		if w.state[id] != White {
			continue
		}
		if w.traverse(id) == Break {
			return true, nil
		}
	}

	return false, nil
}
