package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"poolPricer/internal/model"
)

// JsonlStorage appends results and failures to two JSONL files.
type JsonlStorage struct {
	resultsPath  string
	failuresPath string
	mu           sync.Mutex
}

func NewJsonlStorage(resultsPath, failuresPath string) *JsonlStorage {
	return &JsonlStorage{resultsPath: resultsPath, failuresPath: failuresPath}
}

// PutBatch appends results to the results file and failures to the failures file.
func (s *JsonlStorage) PutBatch(results []model.PoolInit, failures []model.CalcError) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := appendJSONL(s.resultsPath, results); err != nil {
		return fmt.Errorf("store pool inits: %w", err)
	}
	if err := appendJSONL(s.failuresPath, failures); err != nil {
		return fmt.Errorf("store calc errors: %w", err)
	}
	return nil
}

func appendJSONL[T any](path string, records []T) error {
	if len(records) == 0 {
		return nil
	}
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	enc := json.NewEncoder(writer)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			file.Close()
			return fmt.Errorf("encode: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("flush: %w", err)
	}
	return file.Close()
}
