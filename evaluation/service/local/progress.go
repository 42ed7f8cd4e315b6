//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"sync"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service"
)

// progressTracker counts settled samples for one Evaluate call. The callback
// runs under the mutex, so notifications arrive serialized in completion
// order and the final one observes completed == total.
type progressTracker struct {
	mu       sync.Mutex
	total    int
	done     int
	callback service.ProgressCallback
}

func newProgressTracker(total int, callback service.ProgressCallback) *progressTracker {
	return &progressTracker{total: total, callback: callback}
}

func (t *progressTracker) advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	if t.callback != nil {
		t.callback(t.done, t.total)
	}
}
