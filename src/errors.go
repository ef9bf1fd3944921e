package latinleven

import "github.com/pkg/errors"

// Sentinel errors for the engine's error taxonomy. Callers compare
// against these with errors.Is; the engine always wraps them with
// errors.WithStack so a stack trace survives past the sentinel check.
var (
	// ErrInvalidArgument covers roman(n) with n < 0 and top_k/suggest
	// called with k <= 0.
	ErrInvalidArgument = errors.New("latinleven: invalid argument")

	// ErrPreconditionFailed covers engine operations invoked before
	// construction completes, and construction against an empty corpus.
	ErrPreconditionFailed = errors.New("latinleven: precondition failed")
)
