// Package astar provides a precise, allocation-conscious implementation of
// the A* shortest-path algorithm over caller-supplied weighted graphs with
// non-negative edge costs.
//
// Overview:
//
//   - FindPath computes the minimum-cost path from start to goal in
//     O(E log E) time, guided by an admissible heuristic.
//   - The open set is a min-heap frontier with a deterministic, configurable
//     tie-break policy; the closed set is a cost ledger mapping each
//     discovered node to its best-known cost, predecessor, and finalization
//     state.
//   - Cost improvements are realized by re-insertion ("lazy decrease-key"):
//     the frontier may hold several entries per node, and each popped entry
//     is validated against the ledger before use. This trades O(E) extra
//     heap entries for guaranteed O(log n) operations and a simple
//     invariant: an entry is live iff its cost snapshot still matches the
//     ledger.
//
// When to use:
//
//   - Point-to-point routing on grids, road networks, or any weighted graph
//     where a cheap lower-bound estimate of remaining cost exists.
//   - With ZeroHeuristic, as plain uniform-cost (Dijkstra) search.
//   - GreedyBestFirst for fast, non-optimal probing; FindPathToAny and
//     FindPathAll for multi-goal variants.
//
// Key features:
//
//   - Generic over any comparable node type; the graph is a one-method
//     interface, optionally extended with membership lookup (Locator) for
//     up-front endpoint validation.
//   - Functional options: context cancellation, cost and expansion budgets,
//     tie-break policy.
//   - Deterministic: TieBreakFIFO (default) makes repeated runs on equal
//     inputs produce identical paths.
//
// Performance and complexity:
//
//   - Time:  O(E log E) — up to E pushes of O(log E) each; every node is
//     finalized at most once.
//   - Space: O(V + E) — V ledger records, up to E live heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNoPath: frontier exhausted without reaching a goal (recoverable).
//   - ErrStartNotFound / ErrGoalNotFound (wrapping ErrNodeNotFound):
//     endpoint absent, detected before the loop when the graph implements
//     Locator.
//   - ErrNegativeCost: a negative edge cost surfaced during expansion.
//   - ErrBudgetExceeded: a WithMaxCost/WithMaxExpansions budget ran out.
//   - ErrCorruptedPath: broken predecessor chain during reconstruction —
//     a bookkeeping defect signal, never an expected outcome.
//   - ErrNilGraph, ErrNilHeuristic, ErrNoGoals, ErrOptionViolation:
//     precondition violations reported before the search starts.
//
// A non-admissible heuristic is a caller contract violation: it silently
// degrades optimality of the returned path, and is deliberately not checked
// at runtime — detecting it would cost as much as re-deriving the
// heuristic's bound.
//
// See example_test.go for runnable usage and the grid package for the
// canonical grid-world graph and its heuristics.
package astar
