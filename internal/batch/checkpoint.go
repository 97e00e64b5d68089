package batch

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
)

// ErrInputMismatch is returned when the input no longer matches the lines a
// checkpoint was taken over.
var ErrInputMismatch = errors.New("input does not match checkpoint")

// Checkpoint marks how far a batch run got. InputDigest is the BLAKE3 digest
// of input lines 1..LastProcessedLine, each followed by '\n'.
type Checkpoint struct {
	Input             string `json:"input,omitempty"`
	LastProcessedLine uint64 `json:"last_processed_line"`
	InputDigest       string `json:"input_digest"`
	UpdatedAt         string `json:"updated_at"`
}

// CheckpointStore persists checkpoints to disk. A zero path disables it.
type CheckpointStore struct {
	path string
}

func NewCheckpointStore(path string, enabled bool) *CheckpointStore {
	if !enabled {
		path = ""
	}
	return &CheckpointStore{path: path}
}

func (c *CheckpointStore) Enabled() bool {
	return c != nil && c.path != ""
}

func (c *CheckpointStore) Load() (Checkpoint, bool, error) {
	if !c.Enabled() {
		return Checkpoint{}, false, nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Checkpoint{}, false, nil
		}
		return Checkpoint{}, false, fmt.Errorf("read checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return Checkpoint{}, false, fmt.Errorf("parse checkpoint: %w", err)
	}
	if cp.LastProcessedLine > 0 && cp.InputDigest == "" {
		return Checkpoint{}, false, fmt.Errorf("checkpoint %s has no input digest", c.path)
	}
	return cp, true, nil
}

// Save writes cp through a temp file so a crash never leaves a partial checkpoint.
func (c *CheckpointStore) Save(cp Checkpoint) error {
	if !c.Enabled() {
		return nil
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create checkpoint dir: %w", err)
		}
	}

	cp.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint tmp: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("rename checkpoint: %w", err)
	}
	return nil
}

// lineDigest accumulates the input digest one line at a time.
type lineDigest struct {
	h hash.Hash
}

func newLineDigest() *lineDigest {
	return &lineDigest{h: blake3.New()}
}

func (d *lineDigest) add(line []byte) {
	d.h.Write(line)
	d.h.Write([]byte{'\n'})
}

func (d *lineDigest) hex() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
