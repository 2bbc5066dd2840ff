// Package core: the arena Graph store and its mutation/query methods.
package core

import "fmt"

// node is one record of the node arena: the user payload plus the heads
// of the two per-direction adjacency chains.
type node[N any] struct {
	weight N
	next   [2]EdgeID // next[Outgoing.Index()], next[Ingoing.Index()]: chain heads
}

// edge is one record of the edge arena: the user payload, the ordered
// endpoint pair, and the two intrusive "next" links continuing the
// source's outgoing chain and the target's ingoing chain.
type edge[E any] struct {
	weight E
	next   [2]EdgeID // continuation of the chains this edge is threaded on
	nodes  [2]NodeID // nodes[0] = source, nodes[1] = target
}

// Graph is an arena-backed graph with node payloads of type N and edge
// payloads of type E. The zero value is not usable; construct with New.
type Graph[N, E any] struct {
	directed bool
	nodes    []node[N]
	edges    []edge[E]
}

// New creates an empty Graph with the given options.
// By default the Graph is undirected with zero-capacity arenas.
// Complexity: O(1) (plus the requested arena capacity).
func New[N, E any](opts ...GraphOption) *Graph[N, E] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, E]{
		directed: cfg.directed,
		nodes:    make([]node[N], 0, cfg.nodeCap),
		edges:    make([]edge[E], 0, cfg.edgeCap),
	}
}

// Directed reports the directedness fixed at construction.
// Storage never branches on it; enumeration does (see Neighbors).
func (g *Graph[N, E]) Directed() bool { return g.directed }

// NodeCount returns the number of nodes ever added since the last Clear.
// Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges ever added since the last Clear.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// hasNode reports whether id addresses a live record in the node arena.
func (g *Graph[N, E]) hasNode(id NodeID) bool {
	return id != NoNode && id.Index() < len(g.nodes)
}

// hasEdge reports whether id addresses a live record in the edge arena.
func (g *Graph[N, E]) hasEdge(id EdgeID) bool {
	return id != NoEdge && id.Index() < len(g.edges)
}

// AddNode appends a node with the given payload and returns its handle.
// Handles are issued in order: the k-th AddNode since the last Clear
// returns NodeID(k-1). Never fails.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(weight N) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node[N]{
		weight: weight,
		next:   [2]EdgeID{NoEdge, NoEdge},
	})

	return id
}

// NodeWeight returns the payload stored at id.
// Returns ErrInvalidNode if id does not address a node.
// Complexity: O(1).
func (g *Graph[N, E]) NodeWeight(id NodeID) (N, error) {
	if !g.hasNode(id) {
		var zero N

		return zero, fmt.Errorf("%w: node %d (arena size %d)", ErrInvalidNode, id, len(g.nodes))
	}

	return g.nodes[id].weight, nil
}

// SetNodeWeight replaces the payload stored at id.
// Returns ErrInvalidNode if id does not address a node.
// Complexity: O(1).
func (g *Graph[N, E]) SetNodeWeight(id NodeID, weight N) error {
	if !g.hasNode(id) {
		return fmt.Errorf("%w: node %d (arena size %d)", ErrInvalidNode, id, len(g.nodes))
	}
	g.nodes[id].weight = weight

	return nil
}

// AddEdge appends an edge from a to b with the given payload and links it
// into the adjacency chains, returning its handle.
//
// Linking is a pure head-prepend, so enumeration yields the most recently
// added edge first. A self-loop (a == b) captures both of the node's chain
// heads into the new edge and then points both heads at it: the one record
// appears once in the outgoing enumeration and once in the ingoing one.
//
// Returns ErrInvalidNode if either endpoint is invalid; on failure the
// graph is left untouched.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(a, b NodeID, weight E) (EdgeID, error) {
	// 1. Validate both endpoints before touching any state.
	if !g.hasNode(a) {
		return NoEdge, fmt.Errorf("%w: source %d (arena size %d)", ErrInvalidNode, a, len(g.nodes))
	}
	if !g.hasNode(b) {
		return NoEdge, fmt.Errorf("%w: target %d (arena size %d)", ErrInvalidNode, b, len(g.nodes))
	}

	// 2. Reserve the next edge handle and build the record.
	id := EdgeID(len(g.edges))
	rec := edge[E]{
		weight: weight,
		nodes:  [2]NodeID{a, b},
	}

	// 3. Prepend onto the chain heads.
	if a == b {
		// Self-loop: capture both heads of the single node, then point
		// both at the new edge. One record, two chain memberships.
		an := &g.nodes[a]
		rec.next = an.next
		an.next[Outgoing.Index()] = id
		an.next[Ingoing.Index()] = id
	} else {
		an := &g.nodes[a]
		bn := &g.nodes[b]
		rec.next = [2]EdgeID{an.next[Outgoing.Index()], bn.next[Ingoing.Index()]}
		an.next[Outgoing.Index()] = id
		bn.next[Ingoing.Index()] = id
	}

	// 4. Commit the record. Append happens last so a failed validation
	//    above never leaves a partial mutation behind.
	g.edges = append(g.edges, rec)

	return id, nil
}

// EdgeWeight returns the payload stored at id.
// Returns ErrInvalidEdge if id does not address an edge.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeWeight(id EdgeID) (E, error) {
	if !g.hasEdge(id) {
		var zero E

		return zero, fmt.Errorf("%w: edge %d (arena size %d)", ErrInvalidEdge, id, len(g.edges))
	}

	return g.edges[id].weight, nil
}

// SetEdgeWeight replaces the payload stored at id.
// Returns ErrInvalidEdge if id does not address an edge.
// Complexity: O(1).
func (g *Graph[N, E]) SetEdgeWeight(id EdgeID, weight E) error {
	if !g.hasEdge(id) {
		return fmt.Errorf("%w: edge %d (arena size %d)", ErrInvalidEdge, id, len(g.edges))
	}
	g.edges[id].weight = weight

	return nil
}

// EdgeEndpoints returns the ordered (source, target) pair of id.
// Returns ErrInvalidEdge if id does not address an edge.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeEndpoints(id EdgeID) (source, target NodeID, err error) {
	if !g.hasEdge(id) {
		return NoNode, NoNode, fmt.Errorf("%w: edge %d (arena size %d)", ErrInvalidEdge, id, len(g.edges))
	}
	rec := &g.edges[id]

	return rec.nodes[0], rec.nodes[1], nil
}

// Clear empties both arenas, invalidating every previously issued handle.
// Capacity is retained, so the next AddNode reissues handle 0 without
// reallocating. Complexity: O(1).
func (g *Graph[N, E]) Clear() {
	g.nodes = g.nodes[:0]
	g.edges = g.edges[:0]
}
