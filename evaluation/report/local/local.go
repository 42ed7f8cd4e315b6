//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file-based implementation of the report manager.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
)

const reportSuffix = ".report.json"

// manager stores the per-group aggregates of each report as a JSON document
// on disk. Process metadata such as the dataset ID and creation timestamp is
// not persisted; Get reconstructs a report from the document alone.
type manager struct {
	mu       sync.Mutex
	baseDir  string
	filename string
}

// New creates a local file-based report manager.
func New(opt ...report.Option) report.Manager {
	opts := report.NewOptions(opt...)
	return &manager{
		baseDir:  opts.BaseDir,
		filename: opts.Filename,
	}
}

// Save writes the report's results document to disk, assigning a report ID
// when the report carries none.
func (m *manager) Save(ctx context.Context, r *report.Report) (string, error) {
	if r == nil {
		return "", errors.New("report is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ReportID == "" {
		r.ReportID = uuid.New().String()
	}
	results := r.Results
	if results == nil {
		results = report.Results{}
	}
	if err := m.store(m.reportPath(r.ReportID), results); err != nil {
		return "", fmt.Errorf("store report %s: %w", r.ReportID, err)
	}
	return r.ReportID, nil
}

// Get reads a report's results document back from disk.
func (m *manager) Get(ctx context.Context, reportID string) (*report.Report, error) {
	if reportID == "" {
		return nil, errors.New("report ID is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := os.Open(m.reportPath(reportID))
	if err != nil {
		return nil, fmt.Errorf("open report %s: %w", reportID, err)
	}
	defer f.Close()
	var results report.Results
	if err := json.NewDecoder(f).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", reportID, err)
	}
	return &report.Report{
		ReportID: reportID,
		Results:  results,
	}, nil
}

// List returns the IDs of the reports present in the base directory.
func (m *manager) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.filename != "" {
		if _, err := os.Stat(filepath.Join(m.baseDir, m.filename)); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return []string{}, nil
			}
			return nil, fmt.Errorf("stat report file: %w", err)
		}
		return []string{strings.TrimSuffix(m.filename, filepath.Ext(m.filename))}, nil
	}
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read report directory: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), reportSuffix))
	}
	return ids, nil
}

// Close implements the report manager interface. It is a no-op for the local
// file-based manager.
func (m *manager) Close() error {
	return nil
}

// reportPath resolves the file a report is stored at. A pinned filename takes
// precedence over the per-ID layout.
func (m *manager) reportPath(reportID string) string {
	if m.filename != "" {
		return filepath.Join(m.baseDir, m.filename)
	}
	return filepath.Join(m.baseDir, reportID+reportSuffix)
}

// store atomically writes the results document via a temporary file.
func (m *manager) store(path string, results report.Results) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open temp file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		f.Close()
		return fmt.Errorf("encode results: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
