// Package astar defines the graph contracts, configuration options,
// result types, and sentinel errors for the A* search engine.
//
// A* computes the minimum-cost path between two nodes of a weighted graph
// with non-negative edge costs, guided by an admissible heuristic.
// The graph is supplied by the caller as an interface; the search owns all
// of its working state for the duration of one call.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph is nil.
//	– ErrNilHeuristic   if the provided heuristic function is nil.
//	– ErrOptionViolation if an invalid Option was supplied.
//	– ErrNodeNotFound   if start or goal is absent from the graph
//	                    (wrapped by ErrStartNotFound / ErrGoalNotFound).
//	– ErrNoGoals        if a multi-goal search receives an empty goal set.
//	– ErrNoPath         if the frontier empties before reaching the goal.
//	– ErrNegativeCost   if a negative edge cost is encountered during expansion.
//	– ErrBudgetExceeded if a cost or expansion budget runs out mid-search.
//	– ErrCorruptedPath  if the predecessor chain breaks during reconstruction.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph indicates that a nil Graph was passed to a search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that a nil Heuristic was passed to a search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNodeNotFound indicates that an endpoint is not present in the graph.
	// It is only detectable when the graph implements Locator.
	ErrNodeNotFound = errors.New("astar: node not present in graph")

	// ErrStartNotFound wraps ErrNodeNotFound for a missing start node.
	ErrStartNotFound = fmt.Errorf("%w: start", ErrNodeNotFound)

	// ErrGoalNotFound wraps ErrNodeNotFound for a missing goal node.
	ErrGoalNotFound = fmt.Errorf("%w: goal", ErrNodeNotFound)

	// ErrNoGoals indicates that a multi-goal search received no goals.
	ErrNoGoals = errors.New("astar: at least one goal is required")

	// ErrNoPath indicates the frontier was exhausted without reaching a goal.
	// Recoverable: the caller may retry against a relaxed graph.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrNegativeCost indicates a negative edge cost was encountered.
	// Negative costs invalidate the correctness guarantees of A*.
	ErrNegativeCost = errors.New("astar: negative edge cost encountered")

	// ErrBudgetExceeded indicates a MaxCost or MaxExpansions budget ran out
	// before any goal was reached.
	ErrBudgetExceeded = errors.New("astar: search budget exhausted")

	// ErrCorruptedPath indicates the predecessor chain was broken or cyclic
	// during path reconstruction. This signals a defect in the search
	// bookkeeping and should never occur.
	ErrCorruptedPath = errors.New("astar: predecessor chain broken")
)

// Neighbor is one outgoing edge of a node: the node it reaches and the
// non-negative cost of traversing the edge.
type Neighbor[N comparable] struct {
	Node N       // reached node
	Cost float64 // edge cost, must be ≥ 0
}

// Graph is the read-only graph abstraction consumed by the search.
// N must be comparable so nodes can be used as map keys.
//
// Implementations must be safe for concurrent reads if independent searches
// are to run in parallel; the search itself never mutates the graph.
type Graph[N comparable] interface {
	// Neighbors enumerates the outgoing edges of n with their costs.
	Neighbors(n N) []Neighbor[N]
}

// Locator is an optional capability of a Graph: membership lookup.
// When the supplied graph implements it, searches validate start and goal
// up front and fail with ErrStartNotFound / ErrGoalNotFound instead of
// silently exploring from a void node.
type Locator[N comparable] interface {
	// HasNode reports whether n is a node of the graph.
	HasNode(n N) bool
}

// Heuristic estimates the remaining cost from node to goal.
// It must be non-negative and satisfy estimate(goal, goal) == 0.
// Admissibility (never overestimating the true remaining cost) is required
// for optimal paths; it is a caller contract, not checked at runtime —
// a non-admissible heuristic silently degrades optimality, never correctness
// of termination.
type Heuristic[N comparable] func(node, goal N) float64

// ZeroHeuristic returns the identically-zero heuristic, degenerating A*
// into uniform-cost search (Dijkstra). Trivially admissible and consistent.
func ZeroHeuristic[N comparable]() Heuristic[N] {
	return func(N, N) float64 { return 0 }
}

// TieBreak selects the ordering policy among frontier entries with equal
// primary key. The policy is explicit so results are reproducible and
// testable independent of node representation.
type TieBreak int

const (
	// TieBreakFIFO prefers the earliest-inserted entry (insertion order).
	// Default: guarantees byte-identical results across runs.
	TieBreakFIFO TieBreak = iota

	// TieBreakLIFO prefers the most recently inserted entry. On uniform-cost
	// grids this tends to expand fewer nodes by following the freshest path.
	TieBreakLIFO
)

// Options configures a search invocation.
//
// Ctx           – cancellation context, checked once per expansion.
// MaxCost       – cost budget: expanding a node whose path cost exceeds it
//                 aborts with ErrBudgetExceeded. Default math.Inf(1).
// MaxExpansions – expansion budget: number of true (non-stale) expansions
//                 allowed. 0 means unlimited.
// Tie           – frontier tie-break policy among equal-key entries.
type Options struct {
	Ctx           context.Context
	MaxCost       float64
	MaxExpansions int
	Tie           TieBreak

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
// Invalid values are recorded internally and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no cost budget (MaxCost = +Inf)
//   - no expansion budget (MaxExpansions = 0)
//   - TieBreakFIFO ordering.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxCost:       math.Inf(1),
		MaxExpansions: 0,
		Tie:           TieBreakFIFO,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost sets a cost budget. The search aborts with ErrBudgetExceeded
// once the cheapest remaining candidate costs more than c.
// Must be non-negative; negative values yield ErrOptionViolation.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%g)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithMaxExpansions sets an expansion budget. The search aborts with
// ErrBudgetExceeded after n nodes have been finalized without reaching
// a goal.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithTieBreak selects the frontier ordering policy among equal-key entries.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		if tb != TieBreakFIFO && tb != TieBreakLIFO {
			o.err = fmt.Errorf("%w: unknown TieBreak (%d)", ErrOptionViolation, tb)
			return
		}
		o.Tie = tb
	}
}

// Result holds the outcome of a successful search:
//   - Path: node sequence from start to the goal reached, inclusive.
//   - Cost: total cost of Path.
//   - Goal: the goal node reached (relevant for multi-goal searches).
//   - Expanded: nodes finalized (true loop iterations; stale pops excluded).
//   - Relaxed: successful cost improvements recorded in the ledger.
//   - MaxFrontier: high-water mark of frontier size, the memory footprint
//     of the lazy decrease-key strategy.
type Result[N comparable] struct {
	Path        []N
	Cost        float64
	Goal        N
	Expanded    int
	Relaxed     int
	MaxFrontier int
}
