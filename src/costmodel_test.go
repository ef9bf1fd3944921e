package latinleven

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCostModelDiagonalIsZero(t *testing.T) {
	alphabet, matrix := BuildCostModel(DefaultLayout(), []string{"amor", "amare"})
	for r := range alphabet.decode {
		cid := alphabet.encode[alphabet.decode[r]]
		assert.Equal(t, 0.0, matrix.At(cid, cid))
	}
}

func TestBuildCostModelSymmetricOnLayout(t *testing.T) {
	alphabet, matrix := BuildCostModel(DefaultLayout(), nil)
	for _, a := range "qwertyuiop" {
		for _, b := range "qwertyuiop" {
			ca, okA := alphabet.encode[a]
			cb, okB := alphabet.encode[b]
			require.True(t, okA)
			require.True(t, okB)
			assert.InDelta(t, matrix.At(ca, cb), matrix.At(cb, ca), 1e-9)
		}
	}
}

func TestBuildCostModelCaseFlipCostIsPointOne(t *testing.T) {
	alphabet, matrix := BuildCostModel(DefaultLayout(), nil)
	for _, lower := range "qwertyuiopasdfghjklzxcvbnm" {
		upper := lower - ('a' - 'A')
		cl, okL := alphabet.encode[lower]
		cu, okU := alphabet.encode[upper]
		require.True(t, okL)
		require.True(t, okU)
		assert.InDelta(t, 0.1, matrix.At(cl, cu), 1e-9)
		assert.InDelta(t, 0.1, matrix.At(cu, cl), 1e-9)
	}
}

func TestBuildCostModelUnmappedPairDefaultsToTen(t *testing.T) {
	_, matrix := BuildCostModel(DefaultLayout(), []string{"ß"})
	// 'ß' is not on the layout and has no case variant on it either, so
	// its distance to any layout key should be the flat fallback.
	alphabet, _ := BuildCostModel(DefaultLayout(), []string{"ß"})
	cq := alphabet.encode['q']
	cb := alphabet.encode['ß']
	assert.Equal(t, 10.0, matrix.At(cq, cb))
}

func TestKeyDistanceMatchesReferenceLayout(t *testing.T) {
	l := DefaultLayout()
	pos := l.positions()
	// 'y' is (row 0, col 5); 'z' is (row 2, col 0 + 0.5*2 = 1).
	got := keyDistance(pos, 'y', 'z')
	want := math.Hypot(0-2, 5-1)
	assert.InDelta(t, want, got, 1e-9)
}

func TestQwertyToQwertzKeyboardDistance(t *testing.T) {
	// "y" sits at (row 0, col 5) and "z" at (row 2, col 0+0.5*2=1); the
	// Euclidean distance between those two positions is
	// sqrt(2^2+4^2) ≈ 4.472 (see DESIGN.md for why this, and not the
	// commonly-quoted ≈5.657, is the value this layout actually produces).
	alphabet, matrix := BuildCostModel(DefaultLayout(), []string{"qwerty", "qwertz"})
	cy := alphabet.encode['y']
	cz := alphabet.encode['z']
	want := math.Hypot(2, 4)
	assert.InDelta(t, want, matrix.At(cy, cz), 1e-9)
}
