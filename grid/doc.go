// Package grid provides the canonical grid-of-cells graph for the astar
// package: a rectangular 2D world of free cells and walls with 4- or
// 8-directional connectivity, plus the classic grid distance heuristics.
//
// Overview:
//
//   - Cell{X, Y} is the node type; Grid implements astar.Graph[Cell] and
//     astar.Locator[Cell].
//   - New builds an open grid; From2D builds one from a rows×cols layout
//     where non-zero values mark walls.
//   - Neighbors enumerates in-bounds, non-wall neighbors in a fixed scan
//     order (N, E, S, W, then diagonals under Conn8), so searches over a
//     grid are fully deterministic. Diagonal steps never cut corners past
//     a wall.
//   - Manhattan, Euclidean, Chebyshev and Octile are ready-made
//     astar.Heuristic[Cell] functions; Scaled adapts them to non-unit
//     move costs.
//
// Concurrency: a Grid is safe for concurrent reads, so independent
// searches may share one. Block/Unblock are setup-time mutators and must
// not race with searches.
//
// Complexity: construction O(W×H); Neighbors O(1); heuristics O(1).
//
// Errors (sentinel): ErrBadDimensions, ErrEmptyGrid, ErrRagged,
// ErrOutOfBounds, ErrOptionViolation.
package grid
