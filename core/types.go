// Package core: handle, direction, and option declarations.
//
// This file declares NodeID, EdgeID, Direction, the sentinel errors,
// and the GraphOption constructors.
//
// Errors:
//
//	ErrInvalidNode - node handle is NoNode or out of arena bounds.
//	ErrInvalidEdge - edge handle is NoEdge or out of arena bounds.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates an operation referenced a node handle that is
	// NoNode or outside the node arena.
	ErrInvalidNode = errors.New("core: invalid node handle")

	// ErrInvalidEdge indicates an operation referenced an edge handle that is
	// NoEdge or outside the edge arena.
	ErrInvalidEdge = errors.New("core: invalid edge handle")
)

// NodeID is an opaque handle to a node record in a Graph's node arena.
// Handles are issued densely starting at 0 and remain valid until Clear.
// Callers must not assume numeric meaning beyond ordering of issuance.
type NodeID uint32

// EdgeID is an opaque handle to an edge record in a Graph's edge arena.
// Same issuance and validity rules as NodeID.
type EdgeID uint32

// Sentinel handles. NoNode and NoEdge denote "no handle": the parent of a
// traversal root, the end of an adjacency chain, or an absent result.
const (
	NoNode = NodeID(math.MaxUint32)
	NoEdge = EdgeID(math.MaxUint32)
)

// Index projects the handle to an arena index.
// The result is meaningless for NoNode.
func (n NodeID) Index() int { return int(n) }

// Index projects the handle to an arena index.
// The result is meaningless for NoEdge.
func (e EdgeID) Index() int { return int(e) }

// Direction selects one of the two intrusive adjacency chains of a node:
// Outgoing enumerates edges where the node is the source, Ingoing edges
// where it is the target.
type Direction uint8

const (
	// Outgoing walks edges leaving a node (node == edge source).
	Outgoing Direction = iota

	// Ingoing walks edges entering a node (node == edge target).
	Ingoing
)

// Opposite maps Outgoing to Ingoing and vice versa.
func (d Direction) Opposite() Direction { return d ^ 1 }

// Index maps the direction to {0, 1} for indexing the two-element
// head/next arrays inside node and edge records.
func (d Direction) Index() int { return int(d) }

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	if d == Outgoing {
		return "Outgoing"
	}

	return "Ingoing"
}

// config collects construction-time settings applied by GraphOption.
type config struct {
	directed bool // default false: undirected
	nodeCap  int  // initial node arena capacity
	edgeCap  int  // initial edge arena capacity
}

// GraphOption configures a Graph before creation.
type GraphOption func(*config)

// WithDirected fixes the graph's directedness at construction
// (true = directed, false = undirected; the default is undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithCapacity pre-sizes the node and edge arenas so the first nodes
// and edges hits no reallocation. Negative values are treated as zero.
func WithCapacity(nodes, edges int) GraphOption {
	return func(c *config) {
		if nodes > 0 {
			c.nodeCap = nodes
		}
		if edges > 0 {
			c.edgeCap = edges
		}
	}
}
