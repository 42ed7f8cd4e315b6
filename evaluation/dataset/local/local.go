//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package local provides a dataset manager that reads benchmark files from
// the local filesystem.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
)

// manager implements dataset.Manager backed by the local filesystem.
type manager struct {
	mu      sync.RWMutex
	baseDir string
}

// New creates a local file dataset manager.
func New(opt ...dataset.Option) dataset.Manager {
	opts := dataset.NewOptions(opt...)
	return &manager{
		baseDir: opts.BaseDir,
	}
}

// Get loads the dataset identified by datasetID. The input document must
// carry all four question-type keys at the top level; a key mapped to an
// empty (or null) array yields an empty group.
func (m *manager) Get(_ context.Context, datasetID string) (*dataset.Dataset, error) {
	if datasetID == "" {
		return nil, errors.New("dataset id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, err := m.load(datasetID)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", datasetID, err)
	}
	return ds, nil
}

// Close closes the manager. The local manager holds no resources.
func (m *manager) Close() error {
	return nil
}

func (m *manager) load(datasetID string) (*dataset.Dataset, error) {
	path := m.datasetPath(datasetID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	var groups map[string]json.RawMessage
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("unmarshal file %s: %w", path, err)
	}
	questionTypes := dataset.AllQuestionTypes()
	ds := &dataset.Dataset{
		DatasetID: datasetID,
		Groups:    make(map[dataset.QuestionType][]*dataset.Sample, len(questionTypes)),
	}
	for _, questionType := range questionTypes {
		raw, ok := groups[string(questionType)]
		if !ok {
			return nil, fmt.Errorf("question type %s missing from file %s", questionType, path)
		}
		var samples []*dataset.Sample
		if err := json.Unmarshal(raw, &samples); err != nil {
			return nil, fmt.Errorf("unmarshal question type %s in file %s: %w", questionType, path, err)
		}
		if samples == nil {
			samples = []*dataset.Sample{}
		}
		ds.Groups[questionType] = samples
	}
	return ds, nil
}

func (m *manager) datasetPath(datasetID string) string {
	if m.baseDir == "" {
		return datasetID
	}
	return filepath.Join(m.baseDir, datasetID)
}
