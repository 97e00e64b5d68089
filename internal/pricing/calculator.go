package pricing

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"poolPricer/internal/dex"
	"poolPricer/internal/model"
)

// CalculatorConfig holds optional outputs for the Calculator.
type CalculatorConfig struct {
	IncludeCalldata bool
}

// Calculator turns pair inputs into pool initialization records.
type Calculator struct {
	cfg    CalculatorConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewCalculator builds a Calculator.
func NewCalculator(cfg CalculatorConfig, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Calculate parses both tokens of input and computes the pool's initial sqrt price.
func (c *Calculator) Calculate(input model.PairInput) (model.PoolInit, error) {
	tokenA, err := NewToken(input.TokenA, input.AmountA, input.DecimalsA)
	if err != nil {
		return model.PoolInit{}, fmt.Errorf("token a: %w", err)
	}
	tokenB, err := NewToken(input.TokenB, input.AmountB, input.DecimalsB)
	if err != nil {
		return model.PoolInit{}, fmt.Errorf("token b: %w", err)
	}

	res, err := Compute(tokenA, tokenB)
	if err != nil {
		return model.PoolInit{}, err
	}

	out := model.PoolInit{
		ID:           input.ID,
		Token0:       res.Token0.Address.Hex(),
		Token1:       res.Token1.Address.Hex(),
		Amount0:      res.Token0.Amount.String(),
		Amount1:      res.Token1.Amount.String(),
		SqrtPriceX96: res.SqrtPriceX96.String(),
		Price:        FormatPrice(Price(res.SqrtPriceX96, res.Token0.Decimals, res.Token1.Decimals)),
		InRange:      InRange(res.SqrtPriceX96),
		ComputedAt:   c.now().UTC().Format(time.RFC3339Nano),
	}

	if inverse, err := Reciprocal(res.SqrtPriceX96); err == nil {
		out.InverseSqrtPriceX96 = inverse.String()
	} else {
		c.logger.Debug("inverse sqrt price unavailable", zap.String("sqrt_price_x96", out.SqrtPriceX96), zap.Error(err))
	}

	if tick, err := TickAtSqrtPrice(res.SqrtPriceX96); err == nil {
		out.Tick = &tick
	} else {
		c.logger.Debug("tick unavailable", zap.String("sqrt_price_x96", out.SqrtPriceX96), zap.Error(err))
	}

	if !out.InRange {
		c.logger.Warn("sqrt price outside pool bounds",
			zap.String("id", input.ID),
			zap.String("sqrt_price_x96", out.SqrtPriceX96),
		)
		return out, nil
	}

	if c.cfg.IncludeCalldata {
		data, err := dex.EncodeInitialize(res.SqrtPriceX96)
		if err != nil {
			return model.PoolInit{}, fmt.Errorf("encode initialize: %w", err)
		}
		out.InitializeCalldata = hexutil.Encode(data)
	}

	c.logger.Debug("pool price computed",
		zap.String("id", input.ID),
		zap.String("token0", out.Token0),
		zap.String("token1", out.Token1),
		zap.String("sqrt_price_x96", out.SqrtPriceX96),
	)
	return out, nil
}
