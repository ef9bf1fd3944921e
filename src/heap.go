package latinleven

import (
	"container/heap"
	"math"
)

// scoredIndex is the (score, index) composite ranking key: ties are
// always broken by ascending corpus index.
type scoredIndex struct {
	score float64
	index int
}

// worse reports whether a scores behind b under the tie-break rule: a
// higher score loses, and on an exact tie the higher index loses.
func (a scoredIndex) worse(b scoredIndex) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.index > b.index
}

// topKHeap is a bounded min-of-the-worst heap: it keeps the k best
// (score, index) pairs seen so far, evicting its current worst member
// whenever a better candidate arrives. Root is always the worst kept
// element, so Offer is a single peek-compare-replace.
type topKHeap struct {
	k     int
	items []scoredIndex
}

func newTopKHeap(k int) *topKHeap {
	h := &topKHeap{k: k, items: make([]scoredIndex, 0, k)}
	heap.Init(h)
	return h
}

// Offer considers one candidate, keeping it only if the heap isn't yet
// full or the candidate beats the current worst kept member.
func (h *topKHeap) Offer(score float64, index int) {
	cand := scoredIndex{score, index}
	if len(h.items) < h.k {
		heap.Push(h, cand)
		return
	}
	if cand.worse(h.items[0]) {
		return
	}
	h.items[0] = cand
	heap.Fix(h, 0)
}

// Worst returns the current worst kept score, or +Inf if the heap isn't
// full yet — used by the pruning fast path in the scorer.
func (h *topKHeap) Worst() float64 {
	if len(h.items) < h.k {
		return posInf
	}
	return h.items[0].score
}

// Drain returns the heap's contents as an ascending (score, index) ordered
// slice; the heap itself is left unchanged.
func (h *topKHeap) Drain() []scoredIndex {
	out := make([]scoredIndex, len(h.items))
	copy(out, h.items)
	sortByScoreThenIndex(out)
	return out
}

var posInf = math.Inf(1)

// container/heap.Interface, ordered so root (index 0) is the worst kept
// element: Less(i, j) holds exactly when i should sit closer to the root,
// i.e. when i is worse than j.
func (h *topKHeap) Len() int           { return len(h.items) }
func (h *topKHeap) Less(i, j int) bool { return h.items[i].worse(h.items[j]) }
func (h *topKHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *topKHeap) Push(x interface{}) { h.items = append(h.items, x.(scoredIndex)) }
func (h *topKHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

func sortByScoreThenIndex(items []scoredIndex) {
	// Small k in practice (tens); insertion sort avoids pulling in sort
	// for what is almost always a handful of elements per shard.
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j-1].worse(items[j]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
