package bfs_test

import (
	"testing"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.New[int, int](core.WithCapacity(N+1, N))
	prev := g.AddNode(0)
	start := prev
	for i := 1; i <= N; i++ {
		n := g.AddNode(i)
		_, _ = g.AddEdge(prev, n, 0)
		prev = n
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 nodes, 1022 edges
	nodeCount := (1 << depth) - 1

	g := core.New[int, int](core.WithCapacity(nodeCount, nodeCount-1))
	ids := make([]core.NodeID, nodeCount+1)
	for i := 1; i <= nodeCount; i++ {
		ids[i] = g.AddNode(i)
	}
	for i := 1; i <= (nodeCount-1)/2; i++ {
		_, _ = g.AddEdge(ids[i], ids[2*i], 0)
		_, _ = g.AddEdge(ids[i], ids[2*i+1], 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, ids[1])
	}
}
