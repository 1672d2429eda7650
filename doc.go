// Package pathfind is a focused shortest-path toolkit built around the
// A* algorithm — a generic search core plus a ready-made grid world.
//
// 🚀 What is pathfind?
//
//	A small, zero-dependency library that brings together:
//		• A* search: generic over any comparable node type
//		• Variants: uniform-cost (zero heuristic), greedy best-first, multi-goal
//		• Grid worlds: 4/8-connected grids with walls and per-step costs
//		• Heuristics: Manhattan, Euclidean, Chebyshev, Octile
//
// ✨ Why choose pathfind?
//
//   - Bring your own graph – implement one Neighbors method and you are done
//   - Deterministic – explicit, configurable tie-breaking among equal-cost nodes
//   - Bounded – optional cost and expansion budgets, context cancellation
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives in two subpackages:
//
//	astar/ — the search engine: frontier, cost ledger, FindPath & friends
//	grid/  — the canonical 2D grid graph and its distance heuristics
//
// Quick ASCII example:
//
//	    S . . .        S→(1,0)→(2,0)→(3,0)
//	    . # # .                        ↓
//	    . # G .        found by A* around the walls
//
// See examples/ for runnable, commented walkthroughs.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
