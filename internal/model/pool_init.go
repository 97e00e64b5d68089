package model

// PoolInit is the computed initialization state for a pool. InverseSqrtPriceX96
// is the sqrt price of the same pool with token0 and token1 swapped.
type PoolInit struct {
	ID                  string `json:"id,omitempty"`
	Token0              string `json:"token0"`
	Token1              string `json:"token1"`
	Amount0             string `json:"amount0"`
	Amount1             string `json:"amount1"`
	SqrtPriceX96        string `json:"sqrt_price_x96"`
	InverseSqrtPriceX96 string `json:"inverse_sqrt_price_x96,omitempty"`
	Price               string `json:"price"`
	Tick                *int32 `json:"tick,omitempty"`
	InRange             bool   `json:"in_range"`
	InitializeCalldata  string `json:"initialize_calldata,omitempty"`
	ComputedAt          string `json:"computed_at"`
}
