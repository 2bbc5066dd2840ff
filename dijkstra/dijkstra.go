// Package dijkstra: the algorithm itself — runner state, relaxation,
// and the lazy min-heap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/arenagraph/core"
)

// Dijkstra computes minimum-cost distances from source to every node of
// g, pricing each edge through the weight function.
//
// Returns:
//
//   - dist: map from node to minimum cost (+Inf if unreachable).
//   - parent: map from node to its predecessor on a shortest path;
//     the source and unreachable nodes map to core.NoNode.
//   - err: ErrGraphNil, ErrNilWeight, ErrSourceNotFound, or
//     ErrNegativeWeight if any edge prices below zero.
//
// Directedness follows the graph's enumeration convention: relaxation
// walks only outgoing chains of a directed graph, both chains of an
// undirected one.
func Dijkstra[N, E any](
	g *core.Graph[N, E],
	source core.NodeID,
	weight WeightFunc[E],
	opts ...Option,
) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	// 1. Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate inputs.
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if weight == nil {
		return nil, nil, ErrNilWeight
	}
	if source == core.NoNode || source.Index() >= g.NodeCount() {
		return nil, nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	// 3. Pre-scan all edges to detect negative costs. Fail fast before
	//    any distance is computed.
	for i := 0; i < g.EdgeCount(); i++ {
		e := core.EdgeID(i)
		w, _ := g.EdgeWeight(e)
		if c := weight(e, w); c < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d cost=%g", ErrNegativeWeight, e, c)
		}
	}

	// 4. Prepare runner state: dist=+Inf, parent=NoNode everywhere,
	//    then seed the source at distance 0.
	V := g.NodeCount()
	r := &runner[N, E]{
		g:       g,
		opts:    cfg,
		weight:  weight,
		dist:    make(map[core.NodeID]float64, V),
		parent:  make(map[core.NodeID]core.NodeID, V),
		visited: make(map[core.NodeID]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init(source)

	// 5. Main loop.
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.parent, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N, E any] struct {
	g       *core.Graph[N, E]
	opts    Options
	weight  WeightFunc[E]
	dist    map[core.NodeID]float64     // node → current best distance from source
	parent  map[core.NodeID]core.NodeID // node → predecessor on the shortest path
	visited map[core.NodeID]bool        // distance finalized
	pq      nodePQ                      // lazy min-heap of pending (node, dist) pairs
}

// init sets initial distances and predecessors and pushes source=0.
func (r *runner[N, E]) init(source core.NodeID) {
	for i := 0; i < r.g.NodeCount(); i++ {
		id := core.NodeID(i)
		r.dist[id] = math.Inf(1)
		r.parent[id] = core.NoNode
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process repeatedly extracts the minimum-distance pending node and
// relaxes its adjacency until the heap drains or MaxDistance is passed.
func (r *runner[N, E]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale lazy-decrease-key entry: already finalized, skip.
		if r.visited[item.id] {
			continue
		}

		// Every remaining pending distance is at least this large, so
		// once it passes the cap nothing explorable is left.
		if item.dist > r.opts.MaxDistance {
			break
		}

		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u.
// Assumes dist[u] is final.
func (r *runner[N, E]) relax(u core.NodeID) error {
	nbs := r.g.Neighbors(u)
	for e, v, ok := nbs.Next(); ok; e, v, ok = nbs.Next() {
		w, _ := r.g.EdgeWeight(e)
		cost := r.weight(e, w)

		// The pre-scan caught static negatives; a non-deterministic
		// weight function could still misbehave, so re-check.
		if cost < 0 {
			return fmt.Errorf("%w: edge %d cost=%g", ErrNegativeWeight, e, cost)
		}

		newDist := r.dist[u] + cost
		if newDist > r.opts.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid duplicate pushes on ties.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.parent[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is one pending (node, tentative distance) pair.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key strategy: improved distances push duplicates and
// outdated entries are ignored when popped (checked via visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; called by heap.Push, x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
