// Package algostep is a step-traced graph search engine: it runs the
// canonical search algorithms over a small weighted undirected graph and
// records every observable state transition, so a caller can replay the
// run forward and backward without re-executing anything.
//
// 🚀 What is algostep?
//
//	A small, deterministic, pure-Go engine that brings together:
//		• Core primitives: value-type Node, Edge and Graph, plus derived
//		  adjacency-list and adjacency-matrix projections
//		• Traversals: BFS, DFS — one immutable Step per discovery/advance
//		• Shortest paths: Dijkstra, A* — one Step per selection/relaxation
//		• Replay: an index cursor over the finished trace, forward/backward
//		• Builders: preset graphs (cycle, path, star, grid, …) for editors
//		  and tests
//
// ✨ Why choose algostep?
//
//   - Deterministic – identical inputs always yield identical traces
//   - Self-contained – every Step snapshots its own visited/frontier state
//   - Pure engine – no I/O, no clocks inside the algorithms, no goroutines
//   - Extensible – functional options per runner, pluggable id schemes
//
// Everything is organized under focused subpackages:
//
//	core/     — Node, Edge, Graph types and the adjacency projections
//	trace/    — Step records, the snapshot Recorder and the replay Cursor
//	bfs/      — breadth-first search runner
//	dfs/      — depth-first search runner
//	dijkstra/ — Dijkstra's algorithm runner
//	astar/    — A* search runner
//	engine/   — the boundary: request in, fully materialized result out
//	builder/  — preset graph constructors with id and weight schemes
//
// Begin with engine.Run for the one-call boundary, or call a runner
// package directly when you already hold a core.Graph.
package algostep
