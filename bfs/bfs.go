// Package bfs implements the queue-based traversal itself.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// item pairs a node handle with its BFS depth.
type item struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker[N, E any] struct {
	graph *core.Graph[N, E]
	opts  Options
	queue []item
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// FIFO order guarantees that Depth holds true shortest hop counts for
// every reached node; all other nodes are assigned the Unreachable
// sentinel after the traversal. Parent links form the BFS tree, with
// Parent[start] == core.NoNode.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[N, E any](g *core.Graph[N, E], start core.NodeID, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Validate the start handle.
	if start == core.NoNode || start.Index() >= g.NodeCount() {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 4. Prepare walker with capacity hints.
	n := g.NodeCount()
	w := &walker[N, E]{
		graph: g,
		opts:  o,
		queue: make([]item, 0, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	// 5. Seed with the start node (parent = sentinel) and drain the queue.
	w.enqueue(start, 0, core.NoNode)
	if err := w.loop(); err != nil {
		return w.res, err
	}

	// 6. Every node not reached gets the sentinel depth.
	//    Nodes cannot be added mid-traversal, so NodeCount is stable.
	for i := 0; i < n; i++ {
		if _, seen := w.res.Depth[core.NodeID(i)]; !seen {
			w.res.Depth[core.NodeID(i)] = Unreachable
		}
	}

	return w.res, nil
}

// enqueue records id at depth d with its discovery parent, fires
// OnEnqueue, and appends it to the queue. Presence in Depth doubles as
// the visited set.
func (w *walker[N, E]) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, item{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker[N, E]) loop() error {
	for len(w.queue) > 0 {
		it := w.dequeue()
		if err := w.visit(it); err != nil {
			return err
		}
		w.enqueueNeighbors(it)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N, E]) dequeue() item {
	it := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(it.id, it.depth)

	return it
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N, E]) visit(it item) error {
	w.res.Order = append(w.res.Order, it.id)
	if err := w.opts.OnVisit(it.id, it.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", it.id, err)
	}

	return nil
}

// enqueueNeighbors walks the adjacency of it.id in chain order,
// applying the MaxDepth limit, and queues each first-seen neighbor.
func (w *walker[N, E]) enqueueNeighbors(it item) {
	nextDepth := it.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	nbs := w.graph.Neighbors(it.id)
	for _, nbr, ok := nbs.Next(); ok; _, nbr, ok = nbs.Next() {
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, it.id)
		}
	}
}
