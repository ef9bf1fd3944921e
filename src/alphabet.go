package latinleven

import (
	"strings"

	"github.com/canisaugustinus/latin-leven/src/algo"
)

// macronTable is the fixed mapping used to strip long vowel marks before
// encoding: ā→a, ē→e, ī→i, ō→o, ū→u and their uppercase analogues.
var macronTable = map[rune]rune{
	'ā': 'a', 'ē': 'e', 'ī': 'i', 'ō': 'o', 'ū': 'u',
	'Ā': 'A', 'Ē': 'E', 'Ī': 'I', 'Ō': 'O', 'Ū': 'U',
}

// Alphabet assigns every character a small, dense, non-negative id (a
// "cid") and provides the total encode/decode functions the engine uses
// everywhere else. Once built it is immutable; every lookup is array
// indexing or a single map read.
type Alphabet struct {
	encode map[rune]algo.CID
	decode []rune
	space  algo.CID
}

// newAlphabet assigns ids in construction order: layoutChars first (as
// produced by buildPairCosts, with ' ' guaranteed present even if the
// layout itself never mentions it), then every character newly
// encountered while scanning corpusWords in order.
func newAlphabet(layoutChars []rune, corpusWords []string) *Alphabet {
	a := &Alphabet{encode: make(map[rune]algo.CID)}

	add := func(r rune) {
		if _, ok := a.encode[r]; ok {
			return
		}
		a.encode[r] = algo.CID(len(a.decode))
		a.decode = append(a.decode, r)
	}

	for _, r := range layoutChars {
		add(r)
	}
	add(' ')
	a.space = a.encode[' ']

	for _, word := range corpusWords {
		for _, r := range word {
			add(r)
		}
	}

	return a
}

// Size returns the alphabet size A.
func (a *Alphabet) Size() int {
	return len(a.decode)
}

// SpaceCID is the fallback id for any character outside the encode table.
func (a *Alphabet) SpaceCID() algo.CID {
	return a.space
}

// stripMacrons removes long-vowel marks via the fixed macron table,
// leaving every other character untouched.
func stripMacrons(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if plain, ok := macronTable[r]; ok {
			b.WriteRune(plain)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize applies the macron-stripping and whitespace-trimming passes a
// query goes through, without encoding it. Corpus ingestion also
// normalizes each headword this way before deduplicating and encoding it,
// so a headword list containing a macroned and a macron-free spelling of
// the same word collapses to one entry.
func Normalize(s string) string {
	return strings.TrimSpace(stripMacrons(s))
}

// Encode turns text into a query: strip macrons, trim whitespace, then map
// each remaining character through the encode table, falling back to
// SpaceCID for anything unknown.
func (a *Alphabet) Encode(text string) algo.Word {
	normalized := Normalize(text)
	word := make(algo.Word, 0, len(normalized))
	for _, r := range normalized {
		if cid, ok := a.encode[r]; ok {
			word = append(word, cid)
		} else {
			word = append(word, a.space)
		}
	}
	return word
}

// Decode is the total inverse of Encode's character mapping: one
// character per cid. An out-of-range cid (which should never occur for
// words this Alphabet produced) decodes to a space.
func (a *Alphabet) Decode(w algo.Word) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, cid := range w {
		if int(cid) >= 0 && int(cid) < len(a.decode) {
			b.WriteRune(a.decode[cid])
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}
