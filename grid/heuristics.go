package grid

import (
	"math"

	"github.com/katalvlaran/pathfind/astar"
)

// Distance heuristics for grid searches. All satisfy h(goal, goal) == 0 and
// are shaped as astar.Heuristic[Cell], so they plug straight into FindPath.
// Admissibility on a unit-cost grid:
//
//   - Conn4: Manhattan is exact on an open grid; Euclidean and Chebyshev
//     are admissible but weaker.
//   - Conn8 with DiagCost = √2: Octile is exact on an open grid; Euclidean
//     and Chebyshev are admissible. Manhattan overestimates under Conn8 —
//     do not use it there.
//
// For MoveCost ≠ 1, wrap with Scaled(h, MoveCost).

// Manhattan returns |Δx| + |Δy|: the exact step count under Conn4.
func Manhattan(c, goal Cell) float64 {
	return float64(abs(c.X-goal.X) + abs(c.Y-goal.Y))
}

// Euclidean returns the straight-line distance between cell centers.
func Euclidean(c, goal Cell) float64 {
	return math.Hypot(float64(c.X-goal.X), float64(c.Y-goal.Y))
}

// Chebyshev returns max(|Δx|, |Δy|): the step count under Conn8 when
// diagonal steps cost the same as orthogonal ones.
func Chebyshev(c, goal Cell) float64 {
	dx, dy := abs(c.X-goal.X), abs(c.Y-goal.Y)
	if dx > dy {
		return float64(dx)
	}

	return float64(dy)
}

// Octile returns the exact open-grid distance under Conn8 with √2-cost
// diagonals: max(Δ) + (√2−1)·min(Δ).
func Octile(c, goal Cell) float64 {
	dx, dy := abs(c.X-goal.X), abs(c.Y-goal.Y)
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + (math.Sqrt2-1)*float64(dy)
}

// Scaled multiplies a heuristic by a positive factor, typically MoveCost,
// keeping it admissible on grids with non-unit step costs.
func Scaled(h astar.Heuristic[Cell], factor float64) astar.Heuristic[Cell] {
	return func(c, goal Cell) float64 {
		return factor * h(c, goal)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
