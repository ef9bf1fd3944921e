package latinleven

import (
	"math/rand"
	"sync"

	"github.com/canisaugustinus/latin-leven/src/algo"
	"github.com/pkg/errors"
)

// Corpus is the immutable, ordered array of encoded words the engine
// searches: a word's position in this array is its canonical index and
// the tie-break key for ranking. It is built once and never mutated; the
// only state that changes after construction is the random sampler's
// internal generator, guarded by its own mutex.
type Corpus struct {
	words  []algo.Word
	heads  []string
	randMu sync.Mutex
	rand   *rand.Rand
}

// BuildCorpus encodes every headword via alphabet and freezes the result.
// headwords must already be deduplicated and normalized (LoadWordlist does
// both); BuildCorpus does not re-check either property.
func BuildCorpus(headwords []string, alphabet *Alphabet, seed int64) (*Corpus, error) {
	if len(headwords) == 0 {
		return nil, errors.WithStack(ErrPreconditionFailed)
	}
	words := make([]algo.Word, len(headwords))
	for i, w := range headwords {
		words[i] = alphabet.Encode(w)
	}
	heads := make([]string, len(headwords))
	copy(heads, headwords)
	return &Corpus{
		words: words,
		heads: heads,
		rand:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Len returns the number of words in the corpus.
func (c *Corpus) Len() int {
	return len(c.words)
}

// At returns the encoded word at index i.
func (c *Corpus) At(i int) algo.Word {
	return c.words[i]
}

// Headword returns the original (normalized) spelling at index i, the
// text the engine hands back to callers once scoring has picked a winner.
func (c *Corpus) Headword(i int) string {
	return c.heads[i]
}

// RandomWord uniformly samples one headword, for the engine's "lucky"
// random-word operation.
func (c *Corpus) RandomWord() string {
	c.randMu.Lock()
	i := c.rand.Intn(len(c.heads))
	c.randMu.Unlock()
	return c.heads[i]
}
