// End-to-end searches over grids: the canonical scenarios the engine is
// specified against, plus optimality and determinism properties.
package grid_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/grid"
)

// TestSearch_OpenThreeByThree: unit 3×3 grid, corner to corner.
// Expected: 5 nodes on the path, total cost 4.
func TestSearch_OpenThreeByThree(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	res, err := astar.FindPath(g, grid.Manhattan, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
	require.Len(t, res.Path, 5)
	require.Equal(t, grid.Cell{X: 0, Y: 0}, res.Path[0])
	require.Equal(t, grid.Cell{X: 2, Y: 2}, res.Path[4])
}

// TestSearch_CenterBlocked: removing (1,1) leaves an equal-length detour.
func TestSearch_CenterBlocked(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithWalls(grid.Cell{X: 1, Y: 1}))
	require.NoError(t, err)

	res, err := astar.FindPath(g, grid.Manhattan, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
	require.Len(t, res.Path, 5)
	for _, c := range res.Path {
		require.NotEqual(t, grid.Cell{X: 1, Y: 1}, c, "path crossed a wall")
	}
}

// TestSearch_FullyBlocked: a wall row severing the grid yields ErrNoPath.
func TestSearch_FullyBlocked(t *testing.T) {
	g, err := grid.From2D([][]int{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	require.NoError(t, err)

	_, err = astar.FindPath(g, grid.Manhattan, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	require.ErrorIs(t, err, astar.ErrNoPath)
}

// TestSearch_WallEndpoint: a wall start or goal is rejected before the loop.
func TestSearch_WallEndpoint(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithWalls(grid.Cell{X: 1, Y: 1}))
	require.NoError(t, err)

	_, err = astar.FindPath(g, grid.Manhattan, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 2, Y: 2})
	require.ErrorIs(t, err, astar.ErrStartNotFound)

	_, err = astar.FindPath(g, grid.Manhattan, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 1})
	require.ErrorIs(t, err, astar.ErrGoalNotFound)
}

// TestSearch_UniformCostMatchesAStar: with the zero heuristic the engine
// degenerates to uniform-cost search and still finds the optimal cost,
// while Manhattan-guided A* never expands more nodes.
func TestSearch_UniformCostMatchesAStar(t *testing.T) {
	g, err := grid.From2D([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4}
	informed, err := astar.FindPath(g, grid.Manhattan, start, goal)
	require.NoError(t, err)
	uniform, err := astar.FindPath(g, astar.ZeroHeuristic[grid.Cell](), start, goal)
	require.NoError(t, err)

	require.Equal(t, uniform.Cost, informed.Cost)
	require.LessOrEqual(t, informed.Expanded, uniform.Expanded)
}

// TestSearch_DeterministicOnGrid: repeated runs yield identical paths.
func TestSearch_DeterministicOnGrid(t *testing.T) {
	g, err := grid.New(6, 6, grid.WithWalls(
		grid.Cell{X: 2, Y: 1}, grid.Cell{X: 2, Y: 2}, grid.Cell{X: 2, Y: 3},
		grid.Cell{X: 4, Y: 3}, grid.Cell{X: 4, Y: 4},
	))
	require.NoError(t, err)

	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 5, Y: 5}
	first, err := astar.FindPath(g, grid.Manhattan, start, goal)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.FindPath(g, grid.Manhattan, start, goal)
		require.NoError(t, err)
		require.Equal(t, first.Path, again.Path)
		require.Equal(t, first.Cost, again.Cost)
	}
}

// TestSearch_Conn8Octile: on an open Conn8 grid the Octile estimate is
// exact, so the path cost equals the start-to-goal estimate.
func TestSearch_Conn8Octile(t *testing.T) {
	g, err := grid.New(8, 8, grid.WithConn(grid.Conn8))
	require.NoError(t, err)

	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 7, Y: 3}
	res, err := astar.FindPath(g, grid.Octile, start, goal)
	require.NoError(t, err)
	require.InDelta(t, grid.Octile(start, goal), res.Cost, 1e-9)
}

// TestSearch_GreedyReachesGoal: greedy best-first finds a (possibly
// suboptimal) path; its cost is never below the optimum.
func TestSearch_GreedyReachesGoal(t *testing.T) {
	g, err := grid.New(5, 5, grid.WithWalls(
		grid.Cell{X: 2, Y: 0}, grid.Cell{X: 2, Y: 1}, grid.Cell{X: 2, Y: 2},
	))
	require.NoError(t, err)

	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 0}
	greedy, err := astar.GreedyBestFirst(g, grid.Manhattan, start, goal)
	require.NoError(t, err)
	optimal, err := astar.FindPath(g, grid.Manhattan, start, goal)
	require.NoError(t, err)

	require.Equal(t, goal, greedy.Path[len(greedy.Path)-1])
	require.GreaterOrEqual(t, greedy.Cost, optimal.Cost)
}

// TestSearch_MultiGoalOnGrid: the nearest of several goals is reached.
func TestSearch_MultiGoalOnGrid(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	start := grid.Cell{X: 0, Y: 0}
	goals := []grid.Cell{{X: 4, Y: 4}, {X: 1, Y: 1}}
	res, err := astar.FindPathToAny(g, grid.Manhattan, start, goals)
	require.NoError(t, err)
	require.Equal(t, grid.Cell{X: 1, Y: 1}, res.Goal)
	require.Equal(t, 2.0, res.Cost)
}

// TestSearch_ParallelSearchesShareGrid: independent concurrent searches on
// one read-only grid must not interfere — each owns its frontier and ledger.
func TestSearch_ParallelSearchesShareGrid(t *testing.T) {
	g, err := grid.New(10, 10, grid.WithWalls(grid.Cell{X: 5, Y: 5}))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			goal := grid.Cell{X: i % 10, Y: (i * 3) % 10}
			if goal == (grid.Cell{X: 5, Y: 5}) {
				goal = grid.Cell{X: 9, Y: 9}
			}
			res, err := astar.FindPath(g, grid.Manhattan, grid.Cell{X: 0, Y: 0}, goal)
			if err != nil {
				errs <- err
				return
			}
			if want := grid.Manhattan(grid.Cell{X: 0, Y: 0}, goal); math.Abs(res.Cost-want) > 1e-9 {
				errs <- fmt.Errorf("cost to %v = %g; want %g", goal, res.Cost, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
