// Package core: adjacency chain enumeration.
//
// Enumerating the adjacency of a node in a direction means: start at the
// node's chain head for that direction; while the current handle is not
// NoEdge, yield it, then advance to the edge's own next link for the same
// direction. The walk is lazy and single-pass, but re-enumerable from the
// head at any time: a chain is immutable once built, aside from further
// prepends which only add new edges to the front.
package core

// FirstIncident returns the head of n's adjacency chain in direction dir,
// or NoEdge if the chain is empty or n is not a valid handle.
// Complexity: O(1).
func (g *Graph[N, E]) FirstIncident(n NodeID, dir Direction) EdgeID {
	if !g.hasNode(n) {
		return NoEdge
	}

	return g.nodes[n].next[dir.Index()]
}

// NextIncident returns the edge following e on the chain of direction dir,
// or NoEdge at the end of the chain or if e is not a valid handle.
// Complexity: O(1).
func (g *Graph[N, E]) NextIncident(e EdgeID, dir Direction) EdgeID {
	if !g.hasEdge(e) {
		return NoEdge
	}

	return g.edges[e].next[dir.Index()]
}

// EdgeIter is a lazy walk over one adjacency chain of one node.
// Obtain one from Incident; it yields edges most recently added first.
type EdgeIter[N, E any] struct {
	g   *Graph[N, E]
	dir Direction
	cur EdgeID
}

// Incident returns an iterator over the edges incident to n in direction
// dir. For an invalid n the iterator is empty.
// Complexity: O(1) to create, O(degree) to drain.
func (g *Graph[N, E]) Incident(n NodeID, dir Direction) *EdgeIter[N, E] {
	return &EdgeIter[N, E]{g: g, dir: dir, cur: g.FirstIncident(n, dir)}
}

// Next yields the current edge and advances, or reports exhaustion.
func (it *EdgeIter[N, E]) Next() (EdgeID, bool) {
	if it.cur == NoEdge {
		return NoEdge, false
	}
	e := it.cur
	it.cur = it.g.edges[e].next[it.dir.Index()]

	return e, true
}

// NeighborIter walks the traversal-facing adjacency of one node: each step
// yields an incident edge together with the endpoint on the far side.
//
// This is the one place directedness is interpreted. For a directed graph
// only the outgoing chain is walked; for an undirected graph the outgoing
// chain is followed by the ingoing chain, so an edge is incident to both
// endpoints symmetrically. A self-loop on an undirected graph is therefore
// yielded twice: once per chain, mirroring its contribution of 2 to degree.
type NeighborIter[N, E any] struct {
	g    *Graph[N, E]
	node NodeID
	dir  Direction
	cur  EdgeID
	both bool // undirected: continue onto the ingoing chain
}

// Neighbors returns an iterator over (edge, neighbor) pairs adjacent to n
// under the graph's directedness convention. For an invalid n the iterator
// is empty.
// Complexity: O(1) to create, O(degree) to drain.
func (g *Graph[N, E]) Neighbors(n NodeID) *NeighborIter[N, E] {
	return &NeighborIter[N, E]{
		g:    g,
		node: n,
		dir:  Outgoing,
		cur:  g.FirstIncident(n, Outgoing),
		both: !g.directed && g.hasNode(n),
	}
}

// Next yields the current edge and the neighbor it leads to, then
// advances; ok is false once both relevant chains are exhausted.
func (it *NeighborIter[N, E]) Next() (e EdgeID, neighbor NodeID, ok bool) {
	for it.cur == NoEdge {
		if !it.both || it.dir == Ingoing {
			return NoEdge, NoNode, false
		}
		// Undirected union: switch from the outgoing chain to the ingoing one.
		it.dir = Ingoing
		it.cur = it.g.FirstIncident(it.node, Ingoing)
	}

	e = it.cur
	rec := &it.g.edges[e]
	it.cur = rec.next[it.dir.Index()]
	// Walking Outgoing the far endpoint is the target (nodes[1]),
	// walking Ingoing it is the source (nodes[0]).
	neighbor = rec.nodes[it.dir.Opposite().Index()]

	return e, neighbor, true
}

// Degree counts the edges on n's adjacency chain in direction dir.
// A self-loop appears on both chains, so it contributes 1 to each
// direction and 2 to the total. Returns ErrInvalidNode for a bad handle.
// Complexity: O(degree).
func (g *Graph[N, E]) Degree(n NodeID, dir Direction) (int, error) {
	if !g.hasNode(n) {
		return 0, ErrInvalidNode
	}
	count := 0
	for e := g.FirstIncident(n, dir); e != NoEdge; e = g.edges[e].next[dir.Index()] {
		count++
	}

	return count, nil
}
