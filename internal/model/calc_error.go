package model

// CalcError records a failed calculation for an input line.
type CalcError struct {
	Line  uint64 `json:"line"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}
