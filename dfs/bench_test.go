package dfs_test

import (
	"testing"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
)

// BenchmarkDFS_Chain measures the event engine on a directed chain.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g := core.New[int, int](core.WithDirected(true), core.WithCapacity(N+1, N))
	prev := g.AddNode(0)
	start := prev
	for i := 1; i <= N; i++ {
		n := g.AddNode(i)
		_, _ = g.AddEdge(prev, n, 0)
		prev = n
	}

	sink := 0
	visitor := func(ev dfs.Event) dfs.ControlFlow {
		if _, ok := ev.(dfs.Discover); ok {
			sink++
		}

		return dfs.Continue
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, start, visitor)
	}
	_ = sink
}

// BenchmarkTopologicalSort_DAG sorts a layered DAG.
func BenchmarkTopologicalSort_DAG(b *testing.B) {
	const layers, width = 100, 50
	g := core.New[int, int](core.WithDirected(true), core.WithCapacity(layers*width, (layers-1)*width))
	ids := make([]core.NodeID, layers*width)
	for i := range ids {
		ids[i] = g.AddNode(i)
	}
	for l := 0; l < layers-1; l++ {
		for w := 0; w < width; w++ {
			_, _ = g.AddEdge(ids[l*width+w], ids[(l+1)*width+w], 0)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}
