package pricing

import (
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poolPricer/internal/model"
)

func seedPair() model.PairInput {
	return model.PairInput{
		ID:      "usdc-zstrat",
		TokenA:  usdcBase,
		AmountA: "1e6",
		TokenB:  zstratBase,
		AmountB: "1000e18",
	}
}

func TestCalculatorSeedPair(t *testing.T) {
	calc := NewCalculator(CalculatorConfig{IncludeCalldata: true}, zap.NewNop())
	calc.now = func() time.Time { return time.Unix(1700000000, 0) }

	out, err := calc.Calculate(seedPair())
	require.NoError(t, err)

	assert.Equal(t, "usdc-zstrat", out.ID)
	assert.Equal(t, common.HexToAddress(zstratBase).Hex(), out.Token0)
	assert.Equal(t, common.HexToAddress(usdcBase).Hex(), out.Token1)
	assert.Equal(t, "1000000000000000000000", out.Amount0)
	assert.Equal(t, "1000000", out.Amount1)
	assert.Equal(t, "2505414483750479311864", out.SqrtPriceX96)
	assert.Equal(t, "2505414483750479311864276031392126461", out.InverseSqrtPriceX96)
	assert.True(t, out.InRange)
	require.NotNil(t, out.Tick)
	assert.Equal(t, int32(-345406), *out.Tick)
	assert.True(t, strings.HasPrefix(out.InitializeCalldata, "0xf637731d"), out.InitializeCalldata)
	assert.Equal(t, "2023-11-14T22:13:20Z", out.ComputedAt)
}

func TestCalculatorHumanAmounts(t *testing.T) {
	calc := NewCalculator(CalculatorConfig{}, nil)

	out, err := calc.Calculate(model.PairInput{
		TokenA:    usdcBase,
		AmountA:   "1",
		DecimalsA: 6,
		TokenB:    zstratBase,
		AmountB:   "1000",
		DecimalsB: 18,
	})
	require.NoError(t, err)

	assert.Equal(t, "2505414483750479311864", out.SqrtPriceX96)
	// 1 USDC buys 1000 ZSTRAT, so one ZSTRAT is worth 0.001 USDC.
	assert.Equal(t, "0.001000000000000000", out.Price)
	assert.Empty(t, out.InitializeCalldata)
}

func TestCalculatorOutOfRange(t *testing.T) {
	calc := NewCalculator(CalculatorConfig{IncludeCalldata: true}, zap.NewNop())

	out, err := calc.Calculate(model.PairInput{
		TokenA:  "0x01",
		AmountA: "1e40",
		TokenB:  "0x02",
		AmountB: "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "792281625", out.SqrtPriceX96)
	assert.False(t, out.InRange)
	assert.Empty(t, out.InitializeCalldata)
}

func TestCalculatorErrors(t *testing.T) {
	calc := NewCalculator(CalculatorConfig{}, zap.NewNop())

	input := seedPair()
	input.TokenA = "0xnot-hex"
	_, err := calc.Calculate(input)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), "token a")

	input = seedPair()
	input.AmountB = "abc"
	_, err = calc.Calculate(input)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	input = seedPair()
	input.AmountA = "0"
	_, err = calc.Calculate(input)
	assert.ErrorIs(t, err, ErrNonPositiveAmount)
}
