package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"poolPricer/internal/model"
	"poolPricer/internal/pricing"
	"poolPricer/internal/storage"
)

// RunConfig holds runtime settings for a batch run.
type RunConfig struct {
	Input             string
	BatchSize         int
	CheckpointPath    string
	CheckpointEnabled bool
}

// Stats summarizes a batch run.
type Stats struct {
	Total    int
	Computed int
	Resumed  int
	Failed   int
}

// Runner computes pool prices for every pair in a JSONL stream.
type Runner struct {
	cfg        RunConfig
	calc       *pricing.Calculator
	storage    storage.Storage
	logger     *zap.Logger
	checkpoint *CheckpointStore
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, calc *pricing.Calculator, sink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		calc:       calc,
		storage:    sink,
		logger:     logger,
		checkpoint: NewCheckpointStore(cfg.CheckpointPath, cfg.CheckpointEnabled),
	}
}

// pending holds the outcome of lines read since the last stored batch. It is
// dropped, not stored, when a run stops early, so a resumed run never writes
// a line twice.
type pending struct {
	results  []model.PoolInit
	failures []model.CalcError
}

func (p *pending) size() int {
	return len(p.results) + len(p.failures)
}

func (p *pending) reset() {
	p.results = p.results[:0]
	p.failures = p.failures[:0]
}

// Run reads pair inputs from in until EOF or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Stats, error) {
	var stats Stats
	if r.calc == nil {
		return stats, fmt.Errorf("calculator is nil")
	}
	if r.storage == nil {
		return stats, fmt.Errorf("storage is nil")
	}
	if r.cfg.BatchSize <= 0 {
		return stats, fmt.Errorf("batch size must be greater than zero")
	}

	cp, resuming, err := r.checkpoint.Load()
	if err != nil {
		return stats, err
	}
	resumeAfter := cp.LastProcessedLine
	if resuming {
		r.logger.Info("resume from checkpoint",
			zap.Uint64("last_processed_line", resumeAfter),
			zap.String("input", cp.Input),
		)
	}

	digest := newLineDigest()
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var batch pending
	var lineNo uint64
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			r.logger.Info("batch interrupted, dropping unstored lines", zap.Int("pending", batch.size()))
			return stats, ctx.Err()
		default:
		}

		lineNo++
		raw := scanner.Bytes()
		digest.add(raw)

		if lineNo <= resumeAfter {
			if len(bytes.TrimSpace(raw)) > 0 {
				stats.Resumed++
			}
			if lineNo == resumeAfter && digest.hex() != cp.InputDigest {
				return stats, fmt.Errorf("%w: lines 1..%d changed", ErrInputMismatch, resumeAfter)
			}
			continue
		}

		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}
		stats.Total++

		record, id, err := r.compute(line)
		if err != nil {
			stats.Failed++
			r.logger.Debug("pair failed", zap.Uint64("line", lineNo), zap.String("id", id), zap.Error(err))
			batch.failures = append(batch.failures, model.CalcError{Line: lineNo, ID: id, Error: err.Error()})
		} else {
			stats.Computed++
			batch.results = append(batch.results, record)
		}

		if batch.size() >= r.cfg.BatchSize {
			if err := r.flush(&batch, lineNo, digest); err != nil {
				return stats, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("scan input: %w", err)
	}
	if lineNo < resumeAfter {
		return stats, fmt.Errorf("%w: input has %d lines, checkpoint is at line %d", ErrInputMismatch, lineNo, resumeAfter)
	}

	if lineNo > resumeAfter {
		if err := r.flush(&batch, lineNo, digest); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (r *Runner) compute(line []byte) (model.PoolInit, string, error) {
	var input model.PairInput
	if err := json.Unmarshal(line, &input); err != nil {
		return model.PoolInit{}, "", err
	}
	record, err := r.calc.Calculate(input)
	return record, input.ID, err
}

func (r *Runner) flush(batch *pending, lineNo uint64, digest *lineDigest) error {
	if err := r.storage.PutBatch(batch.results, batch.failures); err != nil {
		return err
	}
	r.logger.Info("batch stored",
		zap.Int("results", len(batch.results)),
		zap.Int("failures", len(batch.failures)),
		zap.Uint64("line", lineNo),
	)
	batch.reset()

	return r.checkpoint.Save(Checkpoint{
		Input:             r.cfg.Input,
		LastProcessedLine: lineNo,
		InputDigest:       digest.hex(),
	})
}
