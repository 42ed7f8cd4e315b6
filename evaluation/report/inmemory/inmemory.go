//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory implementation of the report manager.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/internal/clone"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
)

// Manager is an in-memory implementation of the report manager. Unlike the
// file-based manager it retains full reports, metadata included.
type Manager struct {
	mu      sync.RWMutex
	reports map[string]*report.Report
}

var _ report.Manager = (*Manager)(nil)

// New creates an in-memory report manager.
func New() *Manager {
	return &Manager{
		reports: make(map[string]*report.Report),
	}
}

// Save stores a copy of the report, assigning a report ID when it carries none.
func (m *Manager) Save(ctx context.Context, r *report.Report) (string, error) {
	if r == nil {
		return "", errors.New("report is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	cloned, err := clone.Clone(r)
	if err != nil {
		return "", fmt.Errorf("clone report %s: %w", r.ReportID, err)
	}
	m.reports[r.ReportID] = cloned
	return r.ReportID, nil
}

// Get returns a copy of a previously saved report.
func (m *Manager) Get(ctx context.Context, reportID string) (*report.Report, error) {
	if reportID == "" {
		return nil, errors.New("report ID is empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reports[reportID]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", reportID, os.ErrNotExist)
	}
	cloned, err := clone.Clone(r)
	if err != nil {
		return nil, fmt.Errorf("clone report %s: %w", reportID, err)
	}
	return cloned, nil
}

// List returns the IDs of all saved reports in lexical order.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.reports))
	for id := range m.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close implements the report manager interface. It is a no-op for the
// in-memory manager.
func (m *Manager) Close() error {
	return nil
}
