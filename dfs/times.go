// Package dfs: discovery/finish timestamp driver built on the event
// engine, the classical parent+times view of a depth-first traversal.
package dfs

import "github.com/katalvlaran/arenagraph/core"

// NoTime is the sentinel timestamp assigned to nodes the traversal
// never reached.
const NoTime = -1

// TimesResult captures the parent links and the discovery/finish clock
// of a single-source DFS.
type TimesResult struct {
	// Parent maps each reached node to the node it was discovered from.
	// The start node maps to core.NoNode.
	Parent map[core.NodeID]core.NodeID

	// Discover and Finish map every node to its timestamps; nodes the
	// traversal never reached carry NoTime in both.
	Discover map[core.NodeID]int
	Finish   map[core.NodeID]int
}

// Times runs a full DFS from start and collects parent links plus
// discovery and finish timestamps. Timestamps of the k reached nodes
// partition [0, 2k); unreached nodes carry NoTime.
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
func Times[N, E any](g *core.Graph[N, E], start core.NodeID) (*TimesResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	res := &TimesResult{
		Parent:   make(map[core.NodeID]core.NodeID, n),
		Discover: make(map[core.NodeID]int, n),
		Finish:   make(map[core.NodeID]int, n),
	}
	res.Parent[start] = core.NoNode

	// Record-keeping visitor: never breaks.
	_, err := DFS(g, start, func(ev Event) ControlFlow {
		switch e := ev.(type) {
		case Discover:
			res.Discover[e.Node] = e.Time
		case TreeEdge:
			res.Parent[e.Target] = e.Source
		case Finish:
			res.Finish[e.Node] = e.Time
		}

		return Continue
	})
	if err != nil {
		return nil, err
	}

	// Sentinel fill for everything the walk never reached.
	for i := 0; i < n; i++ {
		id := core.NodeID(i)
		if _, seen := res.Discover[id]; !seen {
			res.Discover[id] = NoTime
			res.Finish[id] = NoTime
		}
	}

	return res, nil
}
