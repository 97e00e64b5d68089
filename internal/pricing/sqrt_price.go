package pricing

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrEqualIdentifiers  = errors.New("token identifiers are equal")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Result is the outcome of a single sqrt price calculation.
type Result struct {
	Token0       Token
	Token1       Token
	Ratio        *big.Rat
	SqrtPriceX96 *big.Int
}

// Order returns the two tokens sorted by ascending identifier value.
func Order(a, b Token) (Token, Token, error) {
	if a.ID == nil || b.ID == nil {
		return Token{}, Token{}, fmt.Errorf("%w: missing identifier", ErrInvalidIdentifier)
	}
	switch a.ID.Cmp(b.ID) {
	case -1:
		return a, b, nil
	case 1:
		return b, a, nil
	default:
		return Token{}, Token{}, fmt.Errorf("%w: %s", ErrEqualIdentifiers, a.Address.Hex())
	}
}

// Ratio returns token1.Amount / token0.Amount as an exact rational.
func Ratio(token0, token1 Token) (*big.Rat, error) {
	if !token0.Amount.IsPositive() {
		return nil, fmt.Errorf("token0 %s: %w", token0.Address.Hex(), ErrNonPositiveAmount)
	}
	if !token1.Amount.IsPositive() {
		return nil, fmt.Errorf("token1 %s: %w", token1.Address.Hex(), ErrNonPositiveAmount)
	}
	return new(big.Rat).Quo(token1.Amount.Rat(), token0.Amount.Rat()), nil
}

// SqrtRatioX96 returns floor(sqrt(ratio) * 2^96).
//
// sqrt(n/d) * 2^96 = sqrt(n * 2^192 / d), and flooring the radicand before the
// integer square root does not change the floor of the result, so the value
// is exact for any rational input.
func SqrtRatioX96(ratio *big.Rat) (*big.Int, error) {
	if ratio == nil {
		return nil, fmt.Errorf("ratio is nil")
	}
	if ratio.Sign() < 0 {
		return nil, fmt.Errorf("negative ratio %s", ratio.RatString())
	}
	radicand := new(big.Int).Lsh(ratio.Num(), 192)
	radicand.Quo(radicand, ratio.Denom())
	return radicand.Sqrt(radicand), nil
}

// Compute orders the two tokens and derives the pool's initial sqrtPriceX96.
func Compute(a, b Token) (Result, error) {
	token0, token1, err := Order(a, b)
	if err != nil {
		return Result{}, err
	}
	ratio, err := Ratio(token0, token1)
	if err != nil {
		return Result{}, err
	}
	sqrtPrice, err := SqrtRatioX96(ratio)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Token0:       token0,
		Token1:       token1,
		Ratio:        ratio,
		SqrtPriceX96: sqrtPrice,
	}, nil
}
