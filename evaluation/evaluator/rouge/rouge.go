//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package rouge provides the lexical overlap evaluator.
package rouge

import (
	"context"
	"errors"
	"fmt"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	irouge "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/internal/rouge"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

// rougeEvaluator scores lexical overlap between the generated and gold
// answers with the ROUGE-L F-measure.
type rougeEvaluator struct {
	tokenizer irouge.Tokenizer
}

// New creates a new lexical overlap evaluator.
func New() evaluator.Evaluator {
	return &rougeEvaluator{tokenizer: irouge.NewTokenizer()}
}

// Name returns the name of this evaluator.
func (e *rougeEvaluator) Name() string {
	return metric.MetricRougeScore
}

// Description returns a description of what this evaluator does.
func (e *rougeEvaluator) Description() string {
	return "Measures lexical overlap between the generated and gold answers using ROUGE-L"
}

// Evaluate computes the ROUGE-L F-measure of the generated answer against the
// gold answer. Inputs with no scoreable tokens yield a not-computable result
// rather than a zero score.
func (e *rougeEvaluator) Evaluate(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
	if sample == nil {
		return nil, errors.New("sample is nil")
	}
	if len(e.tokenizer.Tokenize(sample.Answer)) == 0 || len(e.tokenizer.Tokenize(sample.GroundTruth)) == 0 {
		return &evaluator.Result{
			Status: status.EvalStatusNotComputable,
			Reason: "generated or gold answer has no scoreable tokens",
		}, nil
	}
	scores, err := irouge.Compute(ctx, sample.GroundTruth, sample.Answer, irouge.WithRougeTypes("rougeL"))
	if err != nil {
		return nil, fmt.Errorf("compute rouge: %w", err)
	}
	score := scores["rougeL"]
	return &evaluator.Result{
		Score:  score.FMeasure,
		Status: status.EvalStatusComputed,
		Reason: fmt.Sprintf("rougeL precision=%.4f recall=%.4f", score.Precision, score.Recall),
	}, nil
}
