package latinleven

import (
	"strconv"

	"github.com/pkg/errors"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman converts n to a standard subtractive Roman numeral: 0 maps to a
// single space, n >= 4000 degrades gracefully to n's decimal
// representation instead of failing, and n < 0 fails with
// ErrInvalidArgument.
func Roman(n int) (string, error) {
	if n < 0 {
		return "", errors.WithStack(ErrInvalidArgument)
	}
	if n == 0 {
		return " ", nil
	}
	if n >= 4000 {
		return strconv.Itoa(n), nil
	}

	var b []byte
	for _, rn := range romanNumerals {
		for n >= rn.value {
			b = append(b, rn.symbol...)
			n -= rn.value
		}
	}
	return string(b), nil
}
