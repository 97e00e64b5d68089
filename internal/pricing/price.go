package pricing

import (
	"fmt"
	"math"
	"math/big"
)

const (
	priceScale = 18

	MinTick = -887272
	MaxTick = -MinTick
)

// Price converts sqrtPriceX96 into the token1/token0 price in whole-token
// units given each token's decimals.
func Price(sqrtPriceX96 *big.Int, decimals0, decimals1 uint8) *big.Rat {
	squared := new(big.Int).Mul(sqrtPriceX96, sqrtPriceX96)
	price := new(big.Rat).SetFrac(squared, Q192.ToBig())

	switch {
	case decimals0 > decimals1:
		price.Mul(price, new(big.Rat).SetInt(pow10(decimals0-decimals1)))
	case decimals1 > decimals0:
		price.Quo(price, new(big.Rat).SetInt(pow10(decimals1-decimals0)))
	}
	return price
}

// FormatPrice renders a price with a fixed number of fraction digits.
func FormatPrice(price *big.Rat) string {
	if price == nil {
		return "0"
	}
	return price.FloatString(priceScale)
}

// TickAtSqrtPrice approximates floor(log_1.0001(price)) for sqrtPriceX96.
func TickAtSqrtPrice(sqrtPriceX96 *big.Int) (int32, error) {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return 0, fmt.Errorf("sqrt price must be positive")
	}

	ratio := new(big.Float).SetPrec(256).SetInt(sqrtPriceX96)
	ratio.Quo(ratio, new(big.Float).SetPrec(256).SetInt(Q96.ToBig()))
	sqrtPrice, _ := ratio.Float64()
	if sqrtPrice == 0 || math.IsInf(sqrtPrice, 0) {
		return 0, fmt.Errorf("sqrt price out of float range: %s", sqrtPriceX96)
	}

	tick := math.Floor(2 * math.Log(sqrtPrice) / math.Log(1.0001))
	if tick < MinTick || tick > MaxTick {
		return 0, fmt.Errorf("tick %.0f out of range", tick)
	}
	return int32(tick), nil
}

func pow10(exp uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}
