// Package arenagraph is an in-memory graph toolkit built around an
// index-stable arena representation: nodes and edges live in growable
// arenas, and adjacency is threaded through intrusive per-direction
// index chains instead of per-node containers.
//
// 🚀 What is arenagraph?
//
//	A small, zero-dependency library that brings together:
//		• Core primitives: opaque NodeID/EdgeID handles, O(1) edge insertion,
//		  handles that stay valid for the lifetime of the graph
//		• Adjacency enumeration: lazy chain walks per direction, no allocation
//		• Traversals: BFS layering, DFS with a typed event visitor
//		• Shortest paths: Dijkstra with pluggable edge costs
//		• Derived algorithms: topological sort, cycle detection
//
// ✨ Why choose arenagraph?
//
//   - Index stability – growth never invalidates a handle you hold
//   - Append-only arenas – no pointer aliasing, no cyclic ownership
//   - Typed DFS events – pattern-match Discover/TreeEdge/BackEdge/…
//     and cancel cooperatively with a single Break
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	core/     — Graph, NodeID/EdgeID handles, Direction, adjacency chains
//	bfs/      — breadth-first search: hop distances and parent links
//	dfs/      — depth-first search visitor engine + topological sort
//	dijkstra/ — single-source shortest paths over non-negative costs
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3───4───5
//
//	six nodes, six undirected edges; BFS from 0 layers them by hop count,
//	DFS from 0 classifies every edge as tree, back, or cross-forward.
//
//	go get github.com/katalvlaran/arenagraph
package arenagraph
