// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph with a caller-supplied edge cost function.
//
// What
//
//   - Dijkstra(g, source, weight): minimum total cost from source to
//     every reachable node, processing nodes in order of increasing
//     distance with a min-heap priority queue.
//   - weight maps an edge handle plus its payload to a non-negative
//     float64 cost, so any payload type can price its edges.
//   - Returns a distance map (+Inf for unreachable nodes) and a
//     predecessor map (core.NoNode for the source and unreachable nodes).
//
// Why
//
//   - BFS counts hops; Dijkstra honors costs. Under unit costs the two
//     agree, which the test suite uses as a cross-check.
//
// Notes on implementation choices
//
//   - Upfront scan of all edges through the weight function (O(E)) to
//     detect negative costs and fail fast with ErrNegativeWeight.
//   - "Lazy" decrease-key: shorter paths push duplicate heap entries and
//     stale ones are skipped when popped.
//   - Ties in distance have no defined order: first extracted wins.
//   - WithMaxDistance(x) stops exploring once the minimum pending
//     distance exceeds x.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:  O((V + E) log V) — V extractions, up to E pushes, each heap
//     operation O(log V)
//   - Space: O(V + E) — distance/parent maps plus worst-case heap
//
// Usage
//
//	dist, parent, err := dijkstra.Dijkstra(g, src,
//	    func(_ core.EdgeID, w float64) float64 { return w })
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrNilWeight, ErrNegativeWeight
//	}
//	_ = dist
//	_ = parent
package dijkstra
