// Package dijkstra: configuration options and error definitions.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/arenagraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source handle does not address
	// a node in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found")

	// ErrNilWeight indicates that no weight function was supplied.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrNegativeWeight indicates that the weight function produced a
	// negative cost; Dijkstra's invariants do not survive one.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// WeightFunc maps an edge and its payload to a non-negative cost.
// It is invoked once per edge during the pre-scan and once per
// relaxation, so it should be cheap and deterministic.
type WeightFunc[E any] func(e core.EdgeID, weight E) float64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// MaxDistance caps exploration: nodes whose tentative distance
	// exceeds it are never finalized. Default +Inf (no cap).
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options value with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance sets a maximum distance threshold; nodes whose
// shortest distance would exceed it are not explored.
// Must pass a non-negative value; negatives panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early; an Option
			// constructor has no error channel.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}
