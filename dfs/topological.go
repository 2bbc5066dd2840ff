// Package dfs: topological ordering derived from the event engine.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every directed edge u→v, u appears before v. A BackEdge anywhere in
// the forest means the order does not exist and ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and chain link visited once)
//   - Memory: O(V)     (state map, recursion stack, order slice)
package dfs

import "github.com/katalvlaran/arenagraph/core"

// TopologicalSort computes a topological ordering of all nodes in g.
// The forest is rooted at every still-White node in handle order, so the
// result is deterministic for a given construction sequence.
//
// Returns ErrGraphNil for a nil graph, ErrUndirected for an undirected
// one, and ErrCycleDetected if any back edge exists.
func TopologicalSort[N, E any](g *core.Graph[N, E]) ([]core.NodeID, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}

	// 2. Shared walker state across all roots of the forest.
	n := g.NodeCount()
	order := make([]core.NodeID, 0, n)
	w := &walker[N, E]{
		graph: g,
		state: make(map[core.NodeID]int, n),
	}
	w.visit = func(ev Event) ControlFlow {
		switch e := ev.(type) {
		case BackEdge:
			// A back edge falsifies the ordering; stop the whole forest.
			return Break
		case Finish:
			order = append(order, e.Node)
		}

		return Continue
	}

	// 3. Drive DFS from every unvisited node.
	for i := 0; i < n; i++ {
		id := core.NodeID(i)
		if w.state[id] != White {
			continue
		}
		if w.traverse(id) == Break {
			return nil, ErrCycleDetected
		}
	}

	// 4. Reverse the finish order to produce the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
