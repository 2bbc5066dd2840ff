// Package core defines the arena-backed Graph type and the opaque
// NodeID/EdgeID handles used everywhere else in arenagraph.
//
// What
//
//   - Graph[N, E]: two append-only arenas (nodes, edges) carrying user
//     payloads of type N and E.
//   - NodeID / EdgeID: opaque integer handles into the arenas. The
//     sentinels NoNode and NoEdge denote "no handle" / end of chain.
//   - Direction: Outgoing or Ingoing, selecting one of the two intrusive
//     adjacency chains threaded through the edge records themselves.
//   - EdgeIter / NeighborIter: lazy, allocation-free chain walks.
//
// Why
//
//   - O(1) edge insertion: adding an edge is a pure prepend onto the
//     head of the relevant chains; no per-node slice ever reallocates.
//   - Index stability: arena growth never invalidates a handle. A
//     NodeID or EdgeID returned by AddNode/AddEdge stays valid until
//     Clear or the graph itself is dropped.
//   - No pointer aliasing: every link is an index validated at access
//     time, so records own nothing and cycles cost nothing.
//
// The trade: there is no per-node or per-edge deletion. The arenas are
// append-only within a graph's lifetime; Clear is the only way to
// shrink, and it invalidates every previously issued handle.
//
// # Directedness
//
// The directed flag is fixed at construction and stored on the Graph,
// but edge linking is identical for directed and undirected graphs:
// every edge always joins its source's outgoing chain and its target's
// ingoing chain. Directedness is a contract interpreted by enumeration —
// Neighbors walks only the outgoing chain of a directed graph, and the
// union of both chains of an undirected one.
//
// # Concurrency
//
// A Graph assumes exclusive access by one logical owner. There is no
// internal locking; callers needing concurrent access must synchronize
// externally.
//
// Complexity (V = nodes, E = edges)
//
//   - AddNode, AddEdge, weight access, EdgeEndpoints: O(1)
//   - Enumerating the adjacency of a node: O(degree)
//   - Memory: O(V + E), reclaimed only by Clear or collection of the Graph
//
// Usage
//
//	g := core.New[string, int]()                 // undirected
//	a := g.AddNode("a")
//	b := g.AddNode("b")
//	e, _ := g.AddEdge(a, b, 7)
//
//	it := g.Incident(a, core.Outgoing)
//	for id, ok := it.Next(); ok; id, ok = it.Next() {
//	    _ = id // most recently added edge first
//	}
//	_ = e
package core
