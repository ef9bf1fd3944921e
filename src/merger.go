package latinleven

// mergeTopK merges the P per-shard heaps (each already locally sorted by
// Drain) into one globally ordered top-k, advancing a read cursor per
// shard and always taking the best available head.
func mergeTopK(heaps []*topKHeap, k int) []scoredIndex {
	lists := make([][]scoredIndex, len(heaps))
	for i, h := range heaps {
		lists[i] = h.Drain()
	}

	cursors := make([]int, len(lists))
	out := make([]scoredIndex, 0, k)

	for len(out) < k {
		bestList := -1
		var best scoredIndex
		for li, list := range lists {
			c := cursors[li]
			if c >= len(list) {
				continue
			}
			cand := list[c]
			if bestList < 0 || best.worse(cand) {
				best = cand
				bestList = li
			}
		}
		if bestList < 0 {
			break
		}
		out = append(out, best)
		cursors[bestList]++
	}
	return out
}
