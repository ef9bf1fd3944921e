package latinleven

import (
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanReferenceValues(t *testing.T) {
	cases := map[int]string{
		1: "I", 4: "IV", 5: "V", 9: "IX", 40: "XL", 90: "XC",
		400: "CD", 900: "CM", 3999: "MMMCMXCIX",
	}
	for n, want := range cases {
		got, err := Roman(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRomanZeroIsASpace(t *testing.T) {
	got, err := Roman(0)
	require.NoError(t, err)
	assert.Equal(t, " ", got)
}

func TestRomanOverflowDegradesToDecimal(t *testing.T) {
	got, err := Roman(4000)
	require.NoError(t, err)
	assert.Equal(t, "4000", got)

	got, err = Roman(1234567)
	require.NoError(t, err)
	assert.Equal(t, "1234567", got)
}

func TestRomanNegativeIsInvalidArgument(t *testing.T) {
	_, err := Roman(-1)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrInvalidArgument))
}
