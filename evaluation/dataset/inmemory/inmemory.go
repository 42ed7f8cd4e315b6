//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory dataset manager.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/internal/clone"
)

// Manager implements the dataset.Manager interface using in-memory storage.
//
// The manager keeps deep-cloned copies of stored datasets and returns
// deep-cloned objects to avoid accidental mutation by callers.
type Manager struct {
	mu       sync.RWMutex
	datasets map[string]*dataset.Dataset
}

var _ dataset.Manager = (*Manager)(nil)

// New creates a new in-memory dataset manager.
func New() *Manager {
	return &Manager{
		datasets: make(map[string]*dataset.Dataset),
	}
}

// Put stores a dataset under its DatasetID.
func (m *Manager) Put(_ context.Context, ds *dataset.Dataset) error {
	if ds == nil {
		return errors.New("dataset is nil")
	}
	if ds.DatasetID == "" {
		return errors.New("dataset id is empty")
	}
	cloned, err := clone.Clone(ds)
	if err != nil {
		return fmt.Errorf("clone dataset %s: %w", ds.DatasetID, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasets[ds.DatasetID] = cloned
	return nil
}

// Get returns the dataset identified by datasetID. If the dataset does not
// exist, os.ErrNotExist is returned.
func (m *Manager) Get(_ context.Context, datasetID string) (*dataset.Dataset, error) {
	if datasetID == "" {
		return nil, errors.New("dataset id is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, ok := m.datasets[datasetID]
	if !ok {
		return nil, fmt.Errorf("%w: dataset %s", os.ErrNotExist, datasetID)
	}
	cloned, err := clone.Clone(ds)
	if err != nil {
		return nil, fmt.Errorf("clone dataset %s: %w", datasetID, err)
	}
	return cloned, nil
}

// Close closes the manager. The in-memory manager holds no resources.
func (m *Manager) Close() error {
	return nil
}
