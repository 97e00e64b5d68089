package pricing

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	Q96  = new(uint256.Int).Lsh(uint256.NewInt(1), 96)
	Q192 = new(uint256.Int).Lsh(uint256.NewInt(1), 192)

	// Pool sqrt price bounds, [MinSqrtRatio, MaxSqrtRatio).
	MinSqrtRatio = uint256.NewInt(4295128739)
	MaxSqrtRatio = uint256.MustFromHex("0xfffd8963efd1fc6a506488495d951d5263988d26")
)

// InRange reports whether sqrtPriceX96 is a valid pool initialization price.
func InRange(sqrtPriceX96 *big.Int) bool {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() < 0 {
		return false
	}
	value, overflow := uint256.FromBig(sqrtPriceX96)
	if overflow {
		return false
	}
	return !value.Lt(MinSqrtRatio) && value.Lt(MaxSqrtRatio)
}

// Reciprocal returns floor(2^192 / sqrtPriceX96), the sqrt price of the same
// pool quoted the other way around.
func Reciprocal(sqrtPriceX96 *big.Int) (*big.Int, error) {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return nil, fmt.Errorf("sqrt price must be positive")
	}
	value, overflow := uint256.FromBig(sqrtPriceX96)
	if overflow {
		return nil, fmt.Errorf("sqrt price overflows uint256: %s", sqrtPriceX96)
	}
	return new(uint256.Int).Div(Q192, value).ToBig(), nil
}
