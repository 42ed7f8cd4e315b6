//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"fmt"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/embedder"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/correctness"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/coverage"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/faithfulness"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/registry"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/rouge"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge"
)

// DefaultRegistry creates a registry with the four benchmark evaluators,
// backed by the supplied judge and embedder.
func DefaultRegistry(j judge.Judge, e embedder.Embedder) (registry.Registry, error) {
	r := registry.New()
	evaluators := []evaluator.Evaluator{
		rouge.New(),
		correctness.New(j, e),
		coverage.New(j),
		faithfulness.New(j),
	}
	for _, impl := range evaluators {
		if err := r.Register("", impl); err != nil {
			return nil, fmt.Errorf("register evaluator %s: %w", impl.Name(), err)
		}
	}
	return r, nil
}
