package input_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/hooke/internal/input"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"10", 10},
		{"0.5", 0.5},
		{" -2.25 ", -2.25},
		{"+3", 3},
		{".5", 0.5},
		{"7.", 7},
		{"0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			v, err := input.ParseNumber("force", tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	for _, text := range []string{"", "  ", "abc", "1e3", "1,5", "NaN", "Inf", "0x10", "--1", "1.2.3", "."} {
		t.Run(text, func(t *testing.T) {
			_, err := input.ParseNumber("displacement", text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, input.ErrInvalidNumber))

			var fe *input.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "displacement", fe.Field)
		})
	}
}

func TestParseNumber_Overflow(t *testing.T) {
	_, err := input.ParseNumber("k", strings.Repeat("9", 400))
	assert.ErrorIs(t, err, input.ErrInvalidNumber)
}

func TestParseAll(t *testing.T) {
	vals, err := input.ParseAll(
		input.Field{Name: "k", Text: "20"},
		input.Field{Name: "x1", Text: "0"},
		input.Field{Name: "x2", Text: "0.5"},
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 0, 0.5}, vals)

	_, err = input.ParseAll(
		input.Field{Name: "k", Text: "x"},
		input.Field{Name: "x1", Text: "0"},
		input.Field{Name: "x2", Text: ""},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrInvalidNumber)
	assert.Contains(t, err.Error(), "k:")
	assert.Contains(t, err.Error(), "x2:")
	assert.NotContains(t, err.Error(), "x1:")
}

func TestIsNumericRune(t *testing.T) {
	for _, r := range "0123456789.-+" {
		assert.True(t, input.IsNumericRune(r), string(r))
	}
	for _, r := range "ae, " {
		assert.False(t, input.IsNumericRune(r), string(r))
	}
}
