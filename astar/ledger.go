package astar

import "fmt"

// costRecord is the per-node bookkeeping of the search: the best known path
// cost g, the estimated total f = g + h, the predecessor on that best path,
// and whether the node has been finalized (popped with its proven minimal
// cost). One record exists per node ever discovered; records are created on
// first discovery, improved when a cheaper path appears, never deleted
// within a search run.
type costRecord[N comparable] struct {
	g         float64
	f         float64
	parent    N
	hasParent bool
	closed    bool
}

// ledger tracks the best-known cost for every discovered node and which
// nodes are finalized. It is the authority frontier entries are validated
// against: an entry whose g no longer matches its node's record is stale.
type ledger[N comparable] struct {
	records map[N]*costRecord[N]
}

func newLedger[N comparable]() *ledger[N] {
	return &ledger[N]{records: make(map[N]*costRecord[N])}
}

// get returns the record for n, if any.
func (l *ledger[N]) get(n N) (*costRecord[N], bool) {
	rec, ok := l.records[n]

	return rec, ok
}

// seed creates the root record: g = 0, no predecessor.
func (l *ledger[N]) seed(n N, f float64) {
	l.records[n] = &costRecord[N]{g: 0, f: f}
}

// tryImprove compares g against the stored cost for n (absence counts as
// infinite) and, if strictly smaller and n is not finalized, records the new
// cost, estimate, and predecessor. Reports whether an improvement happened;
// on false the record is untouched.
func (l *ledger[N]) tryImprove(n N, g, f float64, parent N) bool {
	rec, ok := l.records[n]
	if !ok {
		l.records[n] = &costRecord[N]{g: g, f: f, parent: parent, hasParent: true}

		return true
	}
	if rec.closed || g >= rec.g {
		return false
	}
	rec.g = g
	rec.f = f
	rec.parent = parent
	rec.hasParent = true

	return true
}

// close finalizes n: its recorded cost is now proven minimal and no further
// improvement is accepted. With an admissible, consistent heuristic this is
// the invariant the whole algorithm rests on.
func (l *ledger[N]) close(n N) {
	if rec, ok := l.records[n]; ok {
		rec.closed = true
	}
}

// reconstruct walks predecessor links backward from goal to start and
// returns the forward path. A missing link or a walk longer than the number
// of discovered nodes (a cycle) yields ErrCorruptedPath — a defect signal,
// unreachable while tryImprove/close keep their invariants.
func (l *ledger[N]) reconstruct(start, goal N) ([]N, error) {
	path := []N{goal}
	cur := goal
	for cur != start {
		rec, ok := l.records[cur]
		if !ok || !rec.hasParent {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrCorruptedPath, cur)
		}
		cur = rec.parent
		path = append(path, cur)
		if len(path) > len(l.records) {
			return nil, fmt.Errorf("%w: cycle detected at %v", ErrCorruptedPath, cur)
		}
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
