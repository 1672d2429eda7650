// Package astar implements A* best-first search over caller-supplied
// weighted graphs.
//
// A* expands nodes in order of estimated total cost f = g + h, where g is
// the cheapest known cost from the start and h an admissible heuristic
// estimate of the remaining cost to the goal. The frontier uses a
// "lazy decrease-key" discipline: a cost improvement inserts a fresh heap
// entry instead of mutating the old one, and stale entries are recognized
// against the cost ledger and discarded on pop.
//
// Complexity:
//
//   - Time:  O(E log E) — each edge relaxation may push one entry, each
//     push/pop costs O(log N) with N ≤ E heap entries; every node is
//     finalized at most once. The log-factor bound over a
//     linear-scan-for-minimum frontier (O(V·E)) is the point of the design.
//   - Space: O(V + E) — O(V) ledger records, O(E) worst-case heap entries.
//
// Determinism: equal-f candidates are ordered by insertion sequence
// (TieBreakFIFO by default), so identical inputs produce identical paths.
package astar

import "fmt"

// orderKey selects the frontier's primary ordering key.
type orderKey int

const (
	// orderTotal orders by f = g + h: A* and uniform-cost search.
	orderTotal orderKey = iota
	// orderEstimate orders by h alone: greedy best-first search.
	orderEstimate
)

// FindPath runs A* from start to goal on g, guided by h.
//
// Returns the minimum-cost path whenever one exists, given non-negative
// edge costs and an admissible heuristic. Fails with ErrNoPath when the
// frontier empties first, ErrBudgetExceeded when a configured budget runs
// out, and ErrStartNotFound/ErrGoalNotFound up front when g implements
// Locator and an endpoint is absent.
//
// Complexity: O(E log E) time, O(V + E) space.
func FindPath[N comparable](g Graph[N], h Heuristic[N], start, goal N, opts ...Option) (*Result[N], error) {
	return search(g, h, start, []N{goal}, orderTotal, opts)
}

// FindPathToAny runs A* from start toward a set of goals, terminating at
// whichever goal is reached first (the cheapest-to-reach one, for an
// admissible heuristic). The effective estimate for a node is the minimum
// of h over all goals, which preserves admissibility. Result.Goal names the
// goal reached. An empty goal set yields ErrNoGoals.
func FindPathToAny[N comparable](g Graph[N], h Heuristic[N], start N, goals []N, opts ...Option) (*Result[N], error) {
	return search(g, h, start, goals, orderTotal, opts)
}

// GreedyBestFirst searches from start to goal expanding nodes by heuristic
// estimate alone, ignoring accumulated path cost in the ordering. It often
// reaches a goal after far fewer expansions than A* but the returned path
// carries no optimality guarantee.
func GreedyBestFirst[N comparable](g Graph[N], h Heuristic[N], start, goal N, opts ...Option) (*Result[N], error) {
	return search(g, h, start, []N{goal}, orderEstimate, opts)
}

// FindPathAll visits every goal, chaining A* legs: each leg targets all
// remaining goals at once and the nearest one (by actual path cost) is
// reached first, removed, and becomes the next leg's start. The combined
// result concatenates the legs' paths and sums their costs and statistics.
//
// The tour is greedy nearest-goal-first, not an optimal multi-goal tour.
// Any leg failing (unreachable remaining goals, exhausted budget) fails the
// whole call with that leg's error.
func FindPathAll[N comparable](g Graph[N], h Heuristic[N], start N, goals []N, opts ...Option) (*Result[N], error) {
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	remaining := append([]N(nil), goals...)
	total := &Result[N]{}
	cur := start
	for len(remaining) > 0 {
		leg, err := FindPathToAny(g, h, cur, remaining, opts...)
		if err != nil {
			return nil, err
		}

		// Drop the goal this leg reached from the remaining set.
		for i := range remaining {
			if remaining[i] == leg.Goal {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}

		// Splice the leg in; consecutive legs share their joint node.
		if len(total.Path) == 0 {
			total.Path = append(total.Path, leg.Path...)
		} else {
			total.Path = append(total.Path, leg.Path[1:]...)
		}
		total.Cost += leg.Cost
		total.Expanded += leg.Expanded
		total.Relaxed += leg.Relaxed
		if leg.MaxFrontier > total.MaxFrontier {
			total.MaxFrontier = leg.MaxFrontier
		}
		total.Goal = leg.Goal
		cur = leg.Goal
	}

	return total, nil
}

// runner holds the mutable state of a single search invocation. The frontier
// and ledger are owned exclusively by this call and discarded on return;
// independent searches may run in parallel over a read-only graph.
type runner[N comparable] struct {
	graph       Graph[N]
	heuristic   Heuristic[N]
	options     Options
	order       orderKey
	start       N
	goals       map[N]struct{}
	goalList    []N
	led         *ledger[N]
	front       *frontier[N]
	expanded    int
	relaxed     int
	maxFrontier int
}

// search validates inputs, seeds the runner, and drives the main loop.
//
// Validation order: options, graph, heuristic, goal set, then endpoint
// membership when the graph supports lookup.
func search[N comparable](g Graph[N], h Heuristic[N], start N, goals []N, order orderKey, opts []Option) (*Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	// Endpoint validation is only possible when the graph exposes membership.
	if loc, ok := g.(Locator[N]); ok {
		if !loc.HasNode(start) {
			return nil, fmt.Errorf("%w (%v)", ErrStartNotFound, start)
		}
		for _, goal := range goals {
			if !loc.HasNode(goal) {
				return nil, fmt.Errorf("%w (%v)", ErrGoalNotFound, goal)
			}
		}
	}

	r := &runner[N]{
		graph:     g,
		heuristic: h,
		options:   cfg,
		order:     order,
		start:     start,
		goals:     make(map[N]struct{}, len(goals)),
		goalList:  goals,
		led:       newLedger[N](),
		front:     newFrontier[N](cfg.Tie),
	}
	for _, goal := range goals {
		r.goals[goal] = struct{}{}
	}

	r.init()

	return r.process()
}

// estimate returns the heuristic value for n: against the single goal, or
// the minimum over the goal set. The minimum of admissible estimates is
// itself admissible for reaching any goal.
func (r *runner[N]) estimate(n N) float64 {
	est := r.heuristic(n, r.goalList[0])
	for _, goal := range r.goalList[1:] {
		if v := r.heuristic(n, goal); v < est {
			est = v
		}
	}

	return est
}

// init seeds the ledger with the start record (g=0) and pushes the start
// entry onto the frontier.
func (r *runner[N]) init() {
	est := r.estimate(r.start)
	r.led.seed(r.start, est)
	r.front.push(r.start, 0, r.key(0, est))
	r.maxFrontier = 1
}

// key maps (g, h) to the frontier ordering key for the active search order.
func (r *runner[N]) key(g, est float64) float64 {
	if r.order == orderEstimate {
		return est
	}

	return g + est
}

// process is the main loop: pop, validate against the ledger, finalize,
// test for goal, relax neighbors. Stale entries (node already finalized, or
// cost snapshot superseded by a cheaper path) are discarded without
// counting as a true iteration. Budget and cancellation checks run once per
// true iteration.
func (r *runner[N]) process() (*Result[N], error) {
	cfg := r.options
	for {
		e, ok := r.front.pop()
		if !ok {
			return nil, ErrNoPath
		}

		rec, known := r.led.get(e.node)
		if !known || rec.closed || e.g != rec.g {
			continue // stale entry, superseded or already finalized
		}

		// cancellation check (once per true iteration)
		select {
		case <-cfg.Ctx.Done():
			return nil, cfg.Ctx.Err()
		default:
		}
		if cfg.MaxExpansions > 0 && r.expanded >= cfg.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.expanded)
		}
		if e.g > cfg.MaxCost {
			return nil, fmt.Errorf("%w: cost %g over budget %g", ErrBudgetExceeded, e.g, cfg.MaxCost)
		}

		r.led.close(e.node)
		r.expanded++

		if _, isGoal := r.goals[e.node]; isGoal {
			return r.succeed(e.node, rec.g)
		}

		if err := r.relax(e.node, rec.g); err != nil {
			return nil, err
		}
	}
}

// relax examines each outgoing edge of n and attempts to improve the cost
// of its neighbors. Every successful improvement pushes a fresh frontier
// entry; prior entries for the neighbor become stale and are skipped later.
func (r *runner[N]) relax(n N, g float64) error {
	for _, nb := range r.graph.Neighbors(n) {
		if nb.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, n, nb.Node, nb.Cost)
		}

		candidate := g + nb.Cost
		est := r.estimate(nb.Node)
		if !r.led.tryImprove(nb.Node, candidate, candidate+est, n) {
			continue
		}
		r.relaxed++

		r.front.push(nb.Node, candidate, r.key(candidate, est))
		if m := r.front.len(); m > r.maxFrontier {
			r.maxFrontier = m
		}
	}

	return nil
}

// succeed reconstructs the path to the reached goal and assembles the Result.
func (r *runner[N]) succeed(goal N, cost float64) (*Result[N], error) {
	path, err := r.led.reconstruct(r.start, goal)
	if err != nil {
		return nil, err
	}

	return &Result[N]{
		Path:        path,
		Cost:        cost,
		Goal:        goal,
		Expanded:    r.expanded,
		Relaxed:     r.relaxed,
		MaxFrontier: r.maxFrontier,
	}, nil
}
