package latinleven

import (
	"testing"

	stderrors "errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorsWrapPreservesIs(t *testing.T) {
	wrapped := errors.WithStack(ErrInvalidArgument)
	assert.True(t, stderrors.Is(wrapped, ErrInvalidArgument))
}

func TestDistinctSentinels(t *testing.T) {
	assert.False(t, stderrors.Is(ErrInvalidArgument, ErrPreconditionFailed))
}
