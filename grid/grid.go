// Package grid provides a rectangular 2D grid world usable as the graph
// behind the astar package. Cells are either free or walls; free cells
// connect to their orthogonal (and optionally diagonal) neighbors with
// fixed step costs.
//
// Grid implements both astar.Graph[Cell] and astar.Locator[Cell], so
// searches validate their endpoints against it up front.
package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/astar"
)

// offset is one precomputed neighbor displacement.
type offset struct {
	dx, dy int
	diag   bool
}

// orthogonal N, E, S, W — the scan order is fixed so neighbor enumeration,
// and therefore frontier insertion order, is deterministic.
var conn4Offsets = []offset{
	{0, -1, false}, {1, 0, false}, {0, 1, false}, {-1, 0, false},
}

var conn8Offsets = []offset{
	{0, -1, false}, {1, -1, true}, {1, 0, false}, {1, 1, true},
	{0, 1, false}, {-1, 1, true}, {-1, 0, false}, {-1, -1, true},
}

// Grid is a rectangular cell world. Width and Height define dimensions;
// Conn, MoveCost and DiagCost are fixed at construction.
//
// Grid is safe for concurrent reads (Neighbors, HasNode, Blocked); the
// Block/Unblock mutators are intended for scenario setup and must not run
// concurrently with searches.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	MoveCost      float64
	DiagCost      float64

	blocked [][]bool
	offsets []offset
}

// New constructs an open width×height grid. Returns ErrBadDimensions for
// non-positive sizes, ErrOptionViolation for invalid options, and
// ErrOutOfBounds if a WithWalls cell lies outside the grid.
// Complexity: O(W×H) memory, O(W×H + walls) time.
func New(width, height int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	g := &Grid{
		Width:    width,
		Height:   height,
		Conn:     o.Conn,
		MoveCost: o.MoveCost,
		DiagCost: o.DiagonalCost,
		blocked:  make([][]bool, height),
	}
	if g.DiagCost == 0 {
		g.DiagCost = math.Sqrt2 * g.MoveCost
	}
	for y := range g.blocked {
		g.blocked[y] = make([]bool, width)
	}
	g.offsets = conn4Offsets
	if g.Conn == Conn8 {
		g.offsets = conn8Offsets
	}

	for _, w := range o.walls {
		if err := g.Block(w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// From2D constructs a grid from a rectangular 2D slice, treating every
// non-zero cell as a wall — the layout convention of map files rendered
// into memory. Returns ErrEmptyGrid or ErrRagged on malformed input.
// The input is consumed by value only; the grid holds no reference to it.
func From2D(rows [][]int, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRagged
		}
	}

	g, err := New(w, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			if v != 0 {
				g.blocked[y][x] = true
			}
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Blocked reports whether c is a wall. Out-of-bounds cells count as blocked.
func (g *Grid) Blocked(c Cell) bool {
	return !g.InBounds(c) || g.blocked[c.Y][c.X]
}

// HasNode reports whether c is a node of the graph: in bounds and not a
// wall. Implements astar.Locator[Cell].
func (g *Grid) HasNode(c Cell) bool { return !g.Blocked(c) }

// Block turns c into a wall. Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) Block(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.blocked[c.Y][c.X] = true

	return nil
}

// Unblock clears a wall at c. Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) Unblock(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.blocked[c.Y][c.X] = false

	return nil
}

// Neighbors enumerates the traversable neighbors of c with their step
// costs, implementing astar.Graph[Cell]. A wall or out-of-bounds cell has
// no neighbors. Under Conn8 a diagonal step is forbidden when either of
// its two flanking orthogonal cells is a wall (no corner cutting).
// Complexity: O(1) — at most 8 candidates.
func (g *Grid) Neighbors(c Cell) []astar.Neighbor[Cell] {
	if g.Blocked(c) {
		return nil
	}

	out := make([]astar.Neighbor[Cell], 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{X: c.X + d.dx, Y: c.Y + d.dy}
		if g.Blocked(n) {
			continue
		}
		cost := g.MoveCost
		if d.diag {
			if g.Blocked(Cell{X: c.X + d.dx, Y: c.Y}) || g.Blocked(Cell{X: c.X, Y: c.Y + d.dy}) {
				continue
			}
			cost = g.DiagCost
		}
		out = append(out, astar.Neighbor[Cell]{Node: n, Cost: cost})
	}

	return out
}
