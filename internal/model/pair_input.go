package model

import "encoding/json"

// PairInput describes the two tokens of a pool and the amounts used to seed it.
type PairInput struct {
	ID        string `json:"id,omitempty"`
	TokenA    string `json:"token_a"`
	AmountA   string `json:"amount_a"`
	DecimalsA uint8  `json:"decimals_a,omitempty"`
	TokenB    string `json:"token_b"`
	AmountB   string `json:"amount_b"`
	DecimalsB uint8  `json:"decimals_b,omitempty"`
}

// UnmarshalJSON accepts amounts either as JSON numbers or as strings.
func (p *PairInput) UnmarshalJSON(data []byte) error {
	type Alias PairInput
	aux := struct {
		*Alias
		AmountA json.Number `json:"amount_a"`
		AmountB json.Number `json:"amount_b"`
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.AmountA = aux.AmountA.String()
	p.AmountB = aux.AmountB.String()
	return nil
}
