package latinleven

import (
	"unicode"

	"github.com/canisaugustinus/latin-leven/src/algo"
	"gonum.org/v1/gonum/floats"
)

// Layout describes a keyboard as rows of characters, each row staggered by
// a fixed amount relative to the one above it — the reference QWERTY rows
// stagger by 0.5 per row.
type Layout struct {
	Rows    []string
	Stagger float64
}

// DefaultLayout is the reference QWERTY layout used by the canonical cost
// model.
func DefaultLayout() Layout {
	return Layout{
		Rows:    []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"},
		Stagger: 0.5,
	}
}

// positions returns the (row, col) coordinate of every laid-out rune.
func (l Layout) positions() map[rune][2]float64 {
	pos := make(map[rune][2]float64)
	for row, line := range l.Rows {
		for col, ch := range line {
			pos[ch] = [2]float64{float64(row), float64(col) + l.Stagger*float64(row)}
		}
	}
	return pos
}

// orderedChars returns every rune on the layout in row-major, left-to-right
// reading order. buildPairCosts walks the layout in this order, so the
// lowercase layout characters receive alphabet ids in this relative order
// (interleaved with their uppercase variants).
func (l Layout) orderedChars() []rune {
	var chars []rune
	for _, line := range l.Rows {
		chars = append(chars, []rune(line)...)
	}
	return chars
}

// outOfLayoutDistance is the modelled distance between any character not
// on the layout and every other character. Given the builder below only
// ever computes distances between characters it has already confirmed
// are on the layout, this value is presently unreachable — kept and
// documented rather than removed, since a future builder that scores
// arbitrary characters (e.g. a digits row) would need it.
const outOfLayoutDistance = 100.0

const caseMismatchPenalty = 0.1

// PairCost is one explicit entry written into the cost table: turning A
// into B costs Cost. buildPairCosts below emits these in an order where a
// later entry for the same (A, B) is meant to overwrite an earlier one —
// consumers must apply them in order, not via an unordered map.
type PairCost struct {
	A, B rune
	Cost float64
}

// buildPairCosts computes every explicit (A, B) substitution cost implied
// by the layout, in deterministic order: first the keyboard-distance cost
// for every unordered pair of distinct layout keys (crossed with all four
// case combinations of the pair), then, overwriting whatever those wrote,
// the pure case-flip cost for every layout character against its own case
// variant. It also returns the full ordered list of characters involved —
// every character that appeared on either side of any pair, in the order
// first encountered — which is exactly the order alphabet construction
// must assign ids in.
func buildPairCosts(l Layout) (chars []rune, pairs []PairCost) {
	ordered := l.orderedChars()
	pos := l.positions()

	seen := make(map[rune]bool)
	record := func(r rune) {
		if !seen[r] {
			seen[r] = true
			chars = append(chars, r)
		}
	}

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			a, b := ordered[i], ordered[j]
			dist := keyDistance(pos, a, b)
			for _, av := range caseVariants(a) {
				for _, bv := range caseVariants(b) {
					cost := dist + casePenalty(av, bv)
					pairs = append(pairs, PairCost{av, bv, cost})
					pairs = append(pairs, PairCost{bv, av, cost})
					record(av)
					record(bv)
				}
			}
		}
	}

	// Pure case-flip pairs are written last so they overwrite any larger
	// value the keyboard-distance pass above may have assigned — a
	// case-flip pair always costs 0.1 regardless of identity.
	for _, a := range ordered {
		for _, x := range caseVariants(a) {
			for _, y := range caseVariants(a) {
				cost := casePenalty(x, y)
				pairs = append(pairs, PairCost{x, y, cost})
				record(x)
				record(y)
			}
		}
	}

	return chars, pairs
}

func caseVariants(r rune) [2]rune {
	return [2]rune{unicode.ToLower(r), unicode.ToUpper(r)}
}

func casePenalty(a, b rune) float64 {
	if sameCase(a, b) {
		return 0
	}
	return caseMismatchPenalty
}

func sameCase(a, b rune) bool {
	aUpper := unicode.IsUpper(a)
	bUpper := unicode.IsUpper(b)
	if a == b {
		return true
	}
	return aUpper == bUpper
}

func keyDistance(pos map[rune][2]float64, a, b rune) float64 {
	pa, aok := pos[a]
	pb, bok := pos[b]
	if !aok || !bok {
		return outOfLayoutDistance
	}
	return floats.Distance(pa[:], pb[:], 2)
}

// BuildCostModel produces the Alphabet and Matrix pair: the alphabet's low
// ids are the layout's characters and their uppercase variants, in the
// order buildPairCosts first emits them, followed by space (always
// present) and then any new corpus characters; the matrix diagonal is zero, untouched off-diagonal
// entries default to 10.0, and every pair buildPairCosts emits is applied
// in order.
func BuildCostModel(layout Layout, corpusWords []string) (*Alphabet, *algo.Matrix) {
	chars, pairs := buildPairCosts(layout)
	alphabet := newAlphabet(chars, corpusWords)

	matrix := algo.NewMatrix(alphabet.Size(), matrixFallback)
	for _, p := range pairs {
		a, aok := alphabet.encode[p.A]
		b, bok := alphabet.encode[p.B]
		if !aok || !bok {
			continue
		}
		matrix.Set(a, b, p.Cost)
	}
	return alphabet, matrix
}

const matrixFallback = 10.0
