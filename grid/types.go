// Package grid defines the cell type, configuration options, and sentinel
// errors for the 2D grid-world graph.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a cell outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Cell identifies one grid cell by its coordinates. It is the node type the
// grid exposes to the search: comparable, hence usable as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)" for error messages and examples.
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid construction.
//
// Conn         – neighbor connectivity (Conn4 default).
// MoveCost     – cost of one orthogonal step (default 1).
// DiagonalCost – cost of one diagonal step under Conn8; 0 (default) derives
//                √2 × MoveCost.
type Options struct {
	Conn         Connectivity
	MoveCost     float64
	DiagonalCost float64

	walls []Cell

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Grid.
// Invalid values are recorded and surfaced when the constructor runs.
type Option func(*Options)

// DefaultOptions returns Options with Conn4 connectivity, unit move cost,
// and a derived diagonal cost.
func DefaultOptions() Options {
	return Options{
		Conn:         Conn4,
		MoveCost:     1,
		DiagonalCost: 0,
	}
}

// WithConn selects 4- or 8-directional connectivity.
func WithConn(conn Connectivity) Option {
	return func(o *Options) {
		if conn != Conn4 && conn != Conn8 {
			o.err = fmt.Errorf("%w: unknown Connectivity (%d)", ErrOptionViolation, conn)
			return
		}
		o.Conn = conn
	}
}

// WithMoveCost sets the cost of one orthogonal step.
// Must be positive; zero or negative values yield ErrOptionViolation.
func WithMoveCost(c float64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: MoveCost must be positive (%g)", ErrOptionViolation, c)
			return
		}
		o.MoveCost = c
	}
}

// WithDiagonalCost sets the cost of one diagonal step under Conn8.
// Must be positive; zero or negative values yield ErrOptionViolation.
// If never set, the diagonal cost is √2 × MoveCost.
func WithDiagonalCost(c float64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: DiagonalCost must be positive (%g)", ErrOptionViolation, c)
			return
		}
		o.DiagonalCost = c
	}
}

// WithWalls blocks the given cells at construction time. Walls outside the
// grid boundaries surface as ErrOutOfBounds from the constructor.
func WithWalls(cells ...Cell) Option {
	return func(o *Options) {
		o.walls = append(o.walls, cells...)
	}
}
