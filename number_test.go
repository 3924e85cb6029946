package tilde_test

import (
	"math/big"
	"testing"

	"github.com/bjaus/tilde"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardinal(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    any
		want string
	}{
		"zero":          {n: 0, want: "zero"},
		"one":           {n: 1, want: "one"},
		"teens":         {n: 17, want: "seventeen"},
		"round tens":    {n: 40, want: "forty"},
		"hyphenated":    {n: 42, want: "forty-two"},
		"hundreds":      {n: 123, want: "one hundred twenty-three"},
		"thousands":     {n: 4200, want: "four thousand two hundred"},
		"sparse groups": {n: 1000001, want: "one million one"},
		"millions": {
			n:    1234567,
			want: "one million two hundred thirty-four thousand five hundred sixty-seven",
		},
		"negative": {n: -5, want: "negative five"},
		"max int64": {
			n: int64(9223372036854775807),
			want: "nine quintillion two hundred twenty-three quadrillion three hundred " +
				"seventy-two trillion thirty-six billion eight hundred fifty-four million " +
				"seven hundred seventy-five thousand eight hundred seven",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := tilde.Format("~r", tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCardinalBig(t *testing.T) {
	t.Parallel()
	vigintillion := new(big.Int).Exp(big.NewInt(10), big.NewInt(63), nil)
	out, err := tilde.Format("~r", vigintillion)
	require.NoError(t, err)
	assert.Equal(t, "one vigintillion", out)

	// Beyond the largest named scale the directive refuses to guess.
	tooBig := new(big.Int).Exp(big.NewInt(10), big.NewInt(66), nil)
	_, err = tilde.Format("~r", tooBig)
	require.ErrorIs(t, err, tilde.ErrInvalidArgumentType)
}

func TestOrdinal(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n    int
		want string
	}{
		"zeroth":     {n: 0, want: "zeroth"},
		"first":      {n: 1, want: "first"},
		"second":     {n: 2, want: "second"},
		"third":      {n: 3, want: "third"},
		"fourth":     {n: 4, want: "fourth"},
		"fifth":      {n: 5, want: "fifth"},
		"eighth":     {n: 8, want: "eighth"},
		"ninth":      {n: 9, want: "ninth"},
		"eleventh":   {n: 11, want: "eleventh"},
		"twelfth":    {n: 12, want: "twelfth"},
		"twentieth":  {n: 20, want: "twentieth"},
		"hyphenated": {n: 21, want: "twenty-first"},
		"forty-2nd":  {n: 42, want: "forty-second"},
		"hundredth":  {n: 100, want: "one hundredth"},
		"123rd":      {n: 123, want: "one hundred twenty-third"},
		"thousandth": {n: 1000, want: "one thousandth"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := tilde.Format("~:r", tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestOrdinalNeverEqualsCardinal(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 200; n++ {
		card, err := tilde.Format("~r", n)
		require.NoError(t, err)
		ord, err := tilde.Format("~:r", n)
		require.NoError(t, err)
		assert.NotEqual(t, card, ord, "n=%d", n)
	}
}

func TestRoman(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		n        int
		want     string
	}{
		"one":        {template: "~@r", n: 1, want: "i"},
		"four":       {template: "~@r", n: 4, want: "iv"},
		"nine":       {template: "~@r", n: 9, want: "ix"},
		"forty-two":  {template: "~@r", n: 42, want: "xlii"},
		"1994":       {template: "~@r", n: 1994, want: "mcmxciv"},
		"max modern": {template: "~@r", n: 3999, want: "mmmcmxcix"},
		"old four":   {template: "~:@r", n: 4, want: "IIII"},
		"old nine":   {template: "~:@r", n: 9, want: "VIIII"},
		"old 1994":   {template: "~:@r", n: 1994, want: "MDCCCCLXXXXIIII"},
		"old max":    {template: "~:@r", n: 4999, want: "MMMMDCCCCLXXXXVIIII"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := tilde.Format(tt.template, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRomanOutOfRange(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		n        int
	}{
		"zero":        {template: "~@r", n: 0},
		"negative":    {template: "~@r", n: -7},
		"over modern": {template: "~@r", n: 4000},
		"old zero":    {template: "~:@r", n: 0},
		"over old":    {template: "~:@r", n: 5000},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tilde.Format(tt.template, tt.n)
			require.ErrorIs(t, err, tilde.ErrInvalidArgumentType)
		})
	}
}
