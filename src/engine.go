package latinleven

import (
	"github.com/canisaugustinus/latin-leven/src/algo"
	"github.com/canisaugustinus/latin-leven/src/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SearchConfig is the canonical "search" scoring profile: appends cost
// exactly as much as any other insertion, so a query's own length is not
// favored over a corpus word's.
func SearchConfig() algo.Config {
	return algo.Config{Ins: 3, App: 3, Del: 3, Trn: 2, Rep: 10, UseMatrix: true}
}

// SuggestConfig is the "suggestions" profile: its App is discounted to
// 0.1 so that dictionary words extending the query's prefix dominate.
func SuggestConfig() algo.Config {
	return algo.Config{Ins: 3, App: 0.1, Del: 3, Trn: 2, Rep: 10, UseMatrix: true}
}

// Engine is the search facade: it owns the alphabet, cost matrix, corpus, and
// the two frozen scoring configurations, and is the only type front-end
// collaborators talk to.
type Engine struct {
	alphabet *Alphabet
	matrix   *algo.Matrix
	corpus   *Corpus
	search   algo.Config
	suggest  algo.Config
	log      *zap.Logger
	shutdown *util.ShutdownHooks
}

// EngineOption customizes engine construction.
type EngineOption func(*engineOptions)

type engineOptions struct {
	layout     Layout
	search     algo.Config
	suggest    algo.Config
	logger     *zap.Logger
	corpusSeed int64
}

// WithLayout overrides the keyboard layout the cost model is built from;
// the default is DefaultLayout().
func WithLayout(l Layout) EngineOption {
	return func(o *engineOptions) { o.layout = l }
}

// WithScoringConfigs overrides the search and suggestions profiles.
func WithScoringConfigs(search, suggest algo.Config) EngineOption {
	return func(o *engineOptions) { o.search, o.suggest = search, suggest }
}

// WithLogger attaches a zap logger; the default is zap.NewNop().
func WithLogger(l *zap.Logger) EngineOption {
	return func(o *engineOptions) { o.logger = l }
}

// WithCorpusSeed fixes the random source RandomWord draws from, for
// reproducible tests.
func WithCorpusSeed(seed int64) EngineOption {
	return func(o *engineOptions) { o.corpusSeed = seed }
}

// NewEngine builds the alphabet, cost matrix, and corpus from headwords
// and freezes them into an Engine. headwords must already be normalized
// and deduplicated (see LoadWordlist); an empty corpus is a construction
// failure (ErrPreconditionFailed).
func NewEngine(headwords []string, opts ...EngineOption) (*Engine, error) {
	o := engineOptions{
		layout:     DefaultLayout(),
		search:     SearchConfig(),
		suggest:    SuggestConfig(),
		logger:     zap.NewNop(),
		corpusSeed: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(headwords) == 0 {
		return nil, errors.WithStack(ErrPreconditionFailed)
	}

	alphabet, matrix := BuildCostModel(o.layout, headwords)
	corpus, err := BuildCorpus(headwords, alphabet, o.corpusSeed)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		alphabet: alphabet,
		matrix:   matrix,
		corpus:   corpus,
		search:   o.search,
		suggest:  o.suggest,
		log:      o.logger,
		shutdown: &util.ShutdownHooks{},
	}
	e.log.Info("engine constructed",
		zap.Int("corpus_size", corpus.Len()),
		zap.Int("alphabet_size", alphabet.Size()))
	return e, nil
}

// Best returns the single closest corpus word to text under the search
// profile. It never fails on a non-empty corpus.
func (e *Engine) Best(text string) string {
	results, _ := e.rank(text, 1, e.search)
	return results[0]
}

// TopK returns up to k corpus words closest to text under the search
// profile, ordered by ascending (score, index). k must be at least 1.
func (e *Engine) TopK(text string, k int) ([]string, error) {
	return e.rank(text, k, e.search)
}

// Suggest returns up to k corpus words closest to text under the
// suggestions profile, favoring words that extend text as a prefix. k
// must be at least 1.
func (e *Engine) Suggest(text string, k int) ([]string, error) {
	return e.rank(text, k, e.suggest)
}

func (e *Engine) rank(text string, k int, cfg algo.Config) ([]string, error) {
	if k <= 0 {
		return nil, errors.WithStack(ErrInvalidArgument)
	}
	q := e.alphabet.Encode(text)
	scored := topKParallel(q, cfg, e.matrix, e.corpus, k)
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = e.corpus.Headword(s.index)
	}
	return out, nil
}

// RandomWord uniformly samples one corpus headword, for the "lucky" mode.
func (e *Engine) RandomWord() string {
	return e.corpus.RandomWord()
}

// Roman converts n to a Roman numeral; see the package-level Roman.
func (e *Engine) Roman(n int) (string, error) {
	return Roman(n)
}

// Close runs every registered shutdown hook in reverse order. It is safe
// to call more than once.
func (e *Engine) Close() {
	e.shutdown.Run()
}
