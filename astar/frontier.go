package astar

import "container/heap"

// entry is one frontier candidate. Multiple entries for the same node may
// coexist: a cost improvement re-inserts rather than mutating in place
// ("lazy decrease-key"). An entry is authoritative only while its g matches
// the ledger's current best cost for the node; stale entries are recognized
// and discarded on pop.
type entry[N comparable] struct {
	node N
	g    float64 // path cost snapshot at insertion time, for stale detection
	key  float64 // ordering key: f = g+h for A*, h for greedy best-first
	seq  uint64  // insertion sequence, deterministic tie-break
}

// frontier is the open set: a binary min-heap of entries ordered by key,
// ties resolved by the TieBreak policy fixed at construction.
//
// Complexity: push and pop are O(log n); re-insertion on improvement keeps
// both at O(log n) at the price of O(E) worst-case heap size, versus the
// implementation burden of a true decrease-key structure.
type frontier[N comparable] struct {
	h   entryHeap[N]
	seq uint64
}

// newFrontier builds an empty frontier with the given ordering policy.
func newFrontier[N comparable](tie TieBreak) *frontier[N] {
	return &frontier[N]{h: entryHeap[N]{tie: tie}}
}

// push inserts a candidate with its cost snapshot and ordering key.
func (f *frontier[N]) push(node N, g, key float64) {
	f.seq++
	heap.Push(&f.h, &entry[N]{node: node, g: g, key: key, seq: f.seq})
}

// pop removes and returns the minimum-key entry, or (nil, false) when empty.
func (f *frontier[N]) pop() (*entry[N], bool) {
	if len(f.h.items) == 0 {
		return nil, false
	}

	return heap.Pop(&f.h).(*entry[N]), true
}

// len reports the number of entries, stale ones included.
func (f *frontier[N]) len() int { return len(f.h.items) }

// entryHeap implements heap.Interface over frontier entries.
type entryHeap[N comparable] struct {
	items []*entry[N]
	tie   TieBreak
}

func (h *entryHeap[N]) Len() int { return len(h.items) }

// Less orders by key ascending; equal keys fall back to insertion sequence
// per the configured policy, so the pop order is fully deterministic.
func (h *entryHeap[N]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if h.tie == TieBreakLIFO {
		return a.seq > b.seq
	}

	return a.seq < b.seq
}

func (h *entryHeap[N]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap[N]) Push(x interface{}) { h.items = append(h.items, x.(*entry[N])) }

func (h *entryHeap[N]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release for GC
	h.items = old[:n-1]

	return item
}
