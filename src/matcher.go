package latinleven

import (
	"runtime"
	"sync"

	"github.com/canisaugustinus/latin-leven/src/algo"
	"github.com/canisaugustinus/latin-leven/src/util"
)

// shardRange is a half-open [start, end) slice of corpus indices assigned
// to one worker.
type shardRange struct {
	start, end int
}

// shardCorpus partitions [0, n) into at most partitions roughly equal,
// contiguous index ranges, one per worker goroutine.
func shardCorpus(n, partitions int) []shardRange {
	partitions = util.Constrain(partitions, 1, util.Max(n, 1))
	perShard := n / partitions
	if perShard == 0 {
		return []shardRange{{0, n}}
	}
	shards := make([]shardRange, partitions)
	for i := 0; i < partitions; i++ {
		start := i * perShard
		end := start + perShard
		if i == partitions-1 {
			end = n
		}
		shards[i] = shardRange{start, end}
	}
	return shards
}

// scanShard scores every corpus word in [r.start, r.end) against q under
// cfg, keeping only the k best in a local bounded heap. It prunes a word's
// DP early once its rows show the final distance must exceed the heap's
// current worst kept score; pruning never changes which words end up in the heap, only how
// much work it costs to find out.
func scanShard(q algo.Word, cfg algo.Config, matrix *algo.Matrix, corpus *Corpus, r shardRange, k int) *topKHeap {
	heap := newTopKHeap(k)
	slab := util.MakeSlab(3 * (longestShardWord(corpus, r) + 1))
	for i := r.start; i < r.end; i++ {
		w := corpus.At(i)
		bound := heap.Worst()
		if d, ok := algo.DistanceBounded(q, w, cfg, matrix, slab, bound); ok {
			heap.Offer(d, i)
		}
	}
	return heap
}

func longestShardWord(corpus *Corpus, r shardRange) int {
	longest := 0
	for i := r.start; i < r.end; i++ {
		longest = util.Max(longest, len(corpus.At(i)))
	}
	return longest
}

// topKParallel shards the corpus across runtime.NumCPU() goroutines,
// scores each shard independently into a bounded heap, then merges the
// per-shard heaps into one ascending (score, index) ordered result of at
// most k entries.
func topKParallel(q algo.Word, cfg algo.Config, matrix *algo.Matrix, corpus *Corpus, k int) []scoredIndex {
	n := corpus.Len()
	if n == 0 {
		return nil
	}
	k = util.Min(k, n)
	partitions := runtime.NumCPU()
	shards := shardCorpus(n, partitions)

	heaps := make([]*topKHeap, len(shards))
	var wg sync.WaitGroup
	for idx, r := range shards {
		wg.Add(1)
		go func(idx int, r shardRange) {
			defer wg.Done()
			heaps[idx] = scanShard(q, cfg, matrix, corpus, r, k)
		}(idx, r)
	}
	wg.Wait()

	return mergeTopK(heaps, k)
}
