//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the interface for generation metric evaluators.
package evaluator

import (
	"context"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

// Evaluator scores one aspect of a generated answer.
type Evaluator interface {
	// Name returns the metric name this evaluator computes.
	Name() string
	// Description returns a description of what this evaluator does.
	Description() string
	// Evaluate scores a single sample.
	Evaluate(ctx context.Context, sample *dataset.Sample) (*Result, error)
}

// Result is the outcome of one evaluator run on one sample.
type Result struct {
	// Score in range [0, 1]. Meaningful only when Status is Computed.
	Score float64
	// Status reports whether the score was computed.
	Status status.EvalStatus
	// Reason carries a score breakdown or the cause of a non-computed status.
	Reason string
}
