// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start handle.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start;
//     nodes the search never reached carry the sentinel Unreachable
//   - Parent: map from node → its predecessor in the BFS tree
//     (the start node's parent is core.NoNode)
//   - Supports observer hooks at three stages:
//   - OnEnqueue (when a node is first seen and queued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - Ground truth for Dijkstra under unit edge costs.
//
// Determinism
//
//	Adjacency chains enumerate edges in reverse insertion order (most
//	recently added first), and BFS enqueues neighbors in exactly that
//	order, so the visit sequence is fully reproducible.
//
// Directedness
//
//	BFS walks core.Graph.Neighbors: only the outgoing chain of a
//	directed graph, the outgoing∪ingoing union of an undirected one.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)   (each node and chain link seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, or a hook error
//	}
//	for n, d := range res.Depth {
//	    if d == bfs.Unreachable { /* not connected to start */ }
//	    _ = n
//	}
package bfs
