package storage

import "poolPricer/internal/model"

// Storage persists the outcome of a batch of pair calculations. Results and
// failures of one batch are written together so a checkpoint taken after the
// call covers both.
type Storage interface {
	PutBatch(results []model.PoolInit, failures []model.CalcError) error
}
