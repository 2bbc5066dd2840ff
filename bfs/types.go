// Package bfs: tunable options, result shape, and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/arenagraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start handle is invalid.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreachable is the sentinel depth assigned to every node the search
// never reached.
const Unreachable = math.MaxInt

// Result captures the outcome of a breadth-first traversal.
type Result struct {
	// Order records nodes in the sequence they were visited.
	Order []core.NodeID

	// Depth maps every node to its hop count from the start;
	// unreached nodes carry Unreachable.
	Depth map[core.NodeID]int

	// Parent maps each reached node to the node it was discovered from.
	// The start node maps to core.NoNode.
	Parent map[core.NodeID]core.NodeID
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnEnqueue is called when a node is first seen and queued.
	// Receives the node and its depth from the start.
	OnEnqueue func(id core.NodeID, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id core.NodeID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options value with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(core.NodeID, int) {},
		OnDequeue: func(core.NodeID, int) {},
		OnVisit:   func(core.NodeID, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run when a node is queued.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}
