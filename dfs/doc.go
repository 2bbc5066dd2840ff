// Package dfs implements depth-first search over a core.Graph with a
// typed event visitor, plus algorithms derived from it: discovery/finish
// timestamps, topological sort, and cycle detection.
//
// What
//
//   - DFS(g, start, visit): walk the graph from start, delivering one
//     Event per step to the visitor:
//   - Discover{Node, Time}       — node first entered
//   - TreeEdge{Source, Target}   — edge into an unvisited node
//   - BackEdge{Source, Target}   — edge to an ancestor still on the stack
//   - CrossForwardEdge{…}        — edge to an already finished node
//   - Finish{Node, Time}         — node fully explored
//   - The visitor answers every event with a ControlFlow signal:
//     Continue proceeds; Break unwinds the whole traversal immediately,
//     across all recursion levels, with no further events.
//   - Times(g, start): the classical parent/discover/finish maps.
//   - TopologicalSort(g), HasCycle(g): derived directed-graph algorithms.
//
// Why
//
//   - Edge classification exposes graph structure BFS cannot see:
//     a BackEdge is a cycle witness, finish order is a reverse
//     topological order.
//   - One cooperative cancellation mechanism (Break) instead of
//     exceptions, sentinels in result maps, or shared flags.
//
// # Event machine
//
// Each node is in exactly one of three states: White (unvisited), Gray
// (discovered, still on the recursion stack), Black (finished). A single
// clock increments once per Discover and once per Finish, so the
// timestamps of the N visited nodes partition [0, 2N) without collision
// and Discover(v).Time < Finish(v).Time for every v.
//
// Back edges are ordinary reported events, never errors: DFS does not
// fail on cycles.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) plus visitor cost per event
//   - Memory: O(V) for the state map and recursion stack
//
// Usage
//
//	flow, err := dfs.DFS(g, start, func(ev dfs.Event) dfs.ControlFlow {
//	    switch e := ev.(type) {
//	    case dfs.Discover:
//	        fmt.Println("enter", e.Node, "at", e.Time)
//	    case dfs.BackEdge:
//	        return dfs.Break // found a cycle, stop everything
//	    }
//
//	    return dfs.Continue
//	})
//	// flow == dfs.Break reports that the visitor cancelled.
package dfs
