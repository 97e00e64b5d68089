package pricing

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{input: "0x1", want: 1},
		{input: "0XfF", want: 255},
		{input: "  0x0a  ", want: 10},
		{input: "10", want: 16},
	}
	for _, tt := range tests {
		got, err := ParseIdentifier(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, 0, got.Cmp(big.NewInt(tt.want)), tt.input)
	}

	widest, err := ParseIdentifier("0x" + strings.Repeat("f", 40))
	require.NoError(t, err)
	assert.Equal(t, 160, widest.BitLen())
}

func TestParseIdentifierErrors(t *testing.T) {
	for _, input := range []string{"", "0x", "0xzz", "-0x1", "+1", "0x12 34"} {
		_, err := ParseIdentifier(input)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "input %q", input)
	}

	_, err := ParseIdentifier("0x1" + strings.Repeat("0", 40))
	assert.ErrorIs(t, err, ErrIdentifierTooWide)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		decimals uint8
		want     string
	}{
		{input: "1e6", want: "1000000"},
		{input: "1000e18", want: "1000000000000000000000"},
		{input: "12.5", decimals: 6, want: "12500000"},
		{input: "0.25", want: "0.25"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input, tt.decimals)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got.String(), tt.input)
	}

	for _, input := range []string{"ten", "1e2000000000", "1e-20000", "5e10001"} {
		_, err := ParseAmount(input, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount, input)
	}

	got, err := ParseAmount("1e10000", 0)
	require.NoError(t, err)
	assert.Equal(t, 10001, len(got.String()))
}

func TestOrder(t *testing.T) {
	low := mustToken(t, "0x01", "1")
	high := mustToken(t, "0x02", "2")

	token0, token1, err := Order(high, low)
	require.NoError(t, err)
	assert.Equal(t, low, token0)
	assert.Equal(t, high, token1)

	_, _, err = Order(low, low)
	assert.ErrorIs(t, err, ErrEqualIdentifiers)
}
