// Package algo implements the weighted Damerau-Levenshtein scoring kernel
// and the character-pair cost matrix it consults.
//
// Distance computes the cost of editing one encoded word into another
// under a per-character-pair substitution cost, with a discounted cost for
// insertions that extend past the end of the query (the "append" rule)
// so that dictionary words extending a typed prefix score close to the
// prefix itself.
package algo

import (
	"github.com/canisaugustinus/latin-leven/src/util"
)

// CID is a character id: a small non-negative integer naming one character
// in the engine's alphabet. Encoded words and queries are slices of CID.
type CID int32

// Word is an ordered sequence of character ids.
type Word []CID

// Config is a frozen scoring configuration: the cost of each edit kind that
// does not depend on the specific characters involved, plus the flag
// selecting whether substitutions are looked up in a Matrix or charged a
// flat Rep cost.
type Config struct {
	// Ins is the cost of inserting a character at or before the query's
	// own length.
	Ins float64
	// App is the cost of inserting past the end of the query ("append").
	// A small App relative to Ins makes dictionary words that extend the
	// query's prefix score close to the prefix itself.
	App float64
	// Del is the cost of deleting a query character.
	Del float64
	// Trn is the cost of swapping two adjacent characters (Damerau
	// transposition).
	Trn float64
	// Rep is the flat substitution cost used when UseMatrix is false.
	Rep float64
	// UseMatrix selects per-character-pair substitution costs from a
	// Matrix instead of the flat Rep cost.
	UseMatrix bool
}

// insertCost returns the cost of an insertion whose destination column is
// col, where col is measured against the corpus word (1-based) and
// queryLen is the full length of the query (m in spec terms). Once col
// exceeds queryLen the insertion is an append, not an interior insert.
func insertCost(col, queryLen int, cfg Config) float64 {
	if col > queryLen {
		return cfg.App
	}
	return cfg.Ins
}

// Distance computes the weighted Damerau-Levenshtein distance between
// query q and corpus word w under cfg, consulting m for substitution costs
// when cfg.UseMatrix is set. slab, if non-nil, is reused scratch space for
// the three rolling DP rows and must not be shared across concurrent
// callers.
func Distance(q, w Word, cfg Config, m *Matrix, slab *util.Slab) float64 {
	rowLen := len(w) + 1

	var rows [3][]float64
	if slab != nil && len(slab.F64) >= 3*rowLen {
		rows[0] = slab.F64[0:rowLen]
		rows[1] = slab.F64[rowLen : 2*rowLen]
		rows[2] = slab.F64[2*rowLen : 3*rowLen]
	} else {
		rows[0] = make([]float64, rowLen)
		rows[1] = make([]float64, rowLen)
		rows[2] = make([]float64, rowLen)
	}

	twoBack, prev, cur := rows[0], rows[1], rows[2]
	fillRow0(prev, len(q), cfg)

	for i := 1; i <= len(q); i++ {
		cur[0] = float64(i) * cfg.Del
		for j := 1; j <= len(w); j++ {
			subCost := 0.0
			if q[i-1] != w[j-1] {
				if cfg.UseMatrix {
					subCost = m.At(q[i-1], w[j-1])
				} else {
					subCost = cfg.Rep
				}
			}

			best := min3(
				prev[j-1]+subCost, // substitute/match
				cur[j-1]+insertCost(j, len(q), cfg), // insert into query
				prev[j]+cfg.Del, // delete from query
			)

			if i >= 2 && j >= 2 && q[i-1] == w[j-2] && q[i-2] == w[j-1] {
				best = min2(best, twoBack[j-2]+cfg.Trn)
			}

			cur[j] = best
		}
		twoBack, prev, cur = prev, cur, twoBack
	}

	return prev[len(w)]
}

// DistanceBounded behaves exactly like Distance, except that once every
// later row is certain to exceed bound, it abandons the computation early
// and reports ok = false. Later rows grow from the current row, or, through
// a transposition, from the previous row plus Trn, so the exit is taken
// only when both the current row's minimum and the previous row's minimum
// plus Trn exceed bound; the final distance is then larger still.
// Correctness of a top-k search does not depend on this early exit, only
// its performance.
func DistanceBounded(q, w Word, cfg Config, m *Matrix, slab *util.Slab, bound float64) (float64, bool) {
	rowLen := len(w) + 1

	var rows [3][]float64
	if slab != nil && len(slab.F64) >= 3*rowLen {
		rows[0] = slab.F64[0:rowLen]
		rows[1] = slab.F64[rowLen : 2*rowLen]
		rows[2] = slab.F64[2*rowLen : 3*rowLen]
	} else {
		rows[0] = make([]float64, rowLen)
		rows[1] = make([]float64, rowLen)
		rows[2] = make([]float64, rowLen)
	}

	twoBack, prev, cur := rows[0], rows[1], rows[2]
	fillRow0(prev, len(q), cfg)
	prevRowMin := 0.0 // d[0][0] is the smallest cell of row 0

	for i := 1; i <= len(q); i++ {
		cur[0] = float64(i) * cfg.Del
		rowMin := cur[0]
		for j := 1; j <= len(w); j++ {
			subCost := 0.0
			if q[i-1] != w[j-1] {
				if cfg.UseMatrix {
					subCost = m.At(q[i-1], w[j-1])
				} else {
					subCost = cfg.Rep
				}
			}

			best := min3(
				prev[j-1]+subCost,
				cur[j-1]+insertCost(j, len(q), cfg),
				prev[j]+cfg.Del,
			)

			if i >= 2 && j >= 2 && q[i-1] == w[j-2] && q[i-2] == w[j-1] {
				best = min2(best, twoBack[j-2]+cfg.Trn)
			}

			cur[j] = best
			if best < rowMin {
				rowMin = best
			}
		}
		if min2(rowMin, prevRowMin+cfg.Trn) > bound {
			return 0, false
		}
		prevRowMin = rowMin
		twoBack, prev, cur = prev, cur, twoBack
	}

	return prev[len(w)], true
}

// fillRow0 fills d[0][0..n], the cost of turning the empty query prefix
// into the first j characters of w: j insertions, each charged ins while
// j <= queryLen and app once j exceeds it.
func fillRow0(row []float64, queryLen int, cfg Config) {
	row[0] = 0
	for j := 1; j < len(row); j++ {
		row[j] = row[j-1] + insertCost(j, queryLen, cfg)
	}
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c float64) float64 {
	return min2(min2(a, b), c)
}
