//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package coverage provides the key point coverage evaluator.
package coverage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

// coveredRegex extracts the per-key-point coverage verdicts from the judge response.
var coveredRegex = regexp.MustCompile(`(?im)^Covered:\s*(yes|no)\s*$`)

// coverageEvaluator scores how many key points of the gold answer the
// generated answer covers.
type coverageEvaluator struct {
	judge judge.Judge
}

// New creates a new key point coverage evaluator.
func New(j judge.Judge) evaluator.Evaluator {
	return &coverageEvaluator{judge: j}
}

// Name returns the name of this evaluator.
func (e *coverageEvaluator) Name() string {
	return metric.MetricCoverageScore
}

// Description returns a description of what this evaluator does.
func (e *coverageEvaluator) Description() string {
	return "Measures the fraction of the gold answer's key points covered by the generated answer"
}

// Evaluate asks the judge to extract the gold answer's key points and mark
// each one covered or not. The score is the covered fraction.
func (e *coverageEvaluator) Evaluate(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
	if sample == nil {
		return nil, errors.New("sample is nil")
	}
	if e.judge == nil {
		return nil, errors.New("judge is nil")
	}
	if strings.TrimSpace(sample.Answer) == "" || strings.TrimSpace(sample.GroundTruth) == "" {
		return &evaluator.Result{
			Status: status.EvalStatusNotComputable,
			Reason: "generated or gold answer is blank",
		}, nil
	}

	data := coveragePromptData{
		Question:   sample.Question,
		GoldAnswer: sample.GroundTruth,
		Answer:     sample.Answer,
	}
	var buf bytes.Buffer
	if err := coveragePromptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute coverage prompt template: %w", err)
	}

	response, err := e.judge.Complete(ctx, buf.String())
	if err != nil {
		return nil, fmt.Errorf("judge coverage: %w", err)
	}

	covered, total := countCovered(response)
	if total == 0 {
		return nil, errors.New("no coverage blocks found in judge response")
	}
	score := float64(covered) / float64(total)
	return &evaluator.Result{
		Score:  score,
		Status: status.EvalStatusComputed,
		Reason: fmt.Sprintf("covered %d of %d key points", covered, total),
	}, nil
}

// countCovered tallies the coverage verdicts in the judge response.
func countCovered(content string) (covered, total int) {
	for _, match := range coveredRegex.FindAllStringSubmatch(content, -1) {
		total++
		if strings.EqualFold(match[1], "yes") {
			covered++
		}
	}
	return covered, total
}
