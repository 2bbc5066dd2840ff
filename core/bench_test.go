package core_test

import (
	"testing"

	"github.com/katalvlaran/arenagraph/core"
)

// BenchmarkAddEdge_Star measures O(1) prepend insertion: every edge lands
// at the head of the hub's outgoing chain, no per-node container grows.
func BenchmarkAddEdge_Star(b *testing.B) {
	const leaves = 1024
	g := core.New[int, int](core.WithCapacity(leaves+1, leaves))
	hub := g.AddNode(0)
	ids := make([]core.NodeID, leaves)
	for i := range ids {
		ids[i] = g.AddNode(i + 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.EdgeCount() >= leaves {
			b.StopTimer()
			g.Clear()
			hub = g.AddNode(0)
			for j := range ids {
				ids[j] = g.AddNode(j + 1)
			}
			b.StartTimer()
		}
		_, _ = g.AddEdge(hub, ids[i%leaves], 0)
	}
}

// BenchmarkNeighbors_Chain walks the full adjacency chain of a high-degree node.
func BenchmarkNeighbors_Chain(b *testing.B) {
	const degree = 4096
	g := core.New[int, int](core.WithCapacity(degree+1, degree))
	hub := g.AddNode(0)
	for i := 0; i < degree; i++ {
		n := g.AddNode(i + 1)
		_, _ = g.AddEdge(hub, n, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := g.Neighbors(hub)
		for _, _, ok := it.Next(); ok; _, _, ok = it.Next() {
		}
	}
}
