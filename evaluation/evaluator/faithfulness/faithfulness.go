//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package faithfulness provides the faithfulness evaluator.
package faithfulness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/internal/senttokenize"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

// verdictRegex extracts the per-statement grounding verdicts from the judge
// response.
var verdictRegex = regexp.MustCompile(`(?im)^Verdict:\s*(yes|no)\s*$`)

// faithfulnessEvaluator scores how well the generated answer is grounded in
// the retrieved context passages.
type faithfulnessEvaluator struct {
	judge judge.Judge
}

// New creates a new faithfulness evaluator.
func New(j judge.Judge) evaluator.Evaluator {
	return &faithfulnessEvaluator{judge: j}
}

// Name returns the name of this evaluator.
func (e *faithfulnessEvaluator) Name() string {
	return metric.MetricFaithfulness
}

// Description returns a description of what this evaluator does.
func (e *faithfulnessEvaluator) Description() string {
	return "Measures the fraction of answer statements grounded in the retrieved context passages"
}

// Evaluate splits the generated answer into sentence statements and asks the
// judge to verify each one against the retrieved contexts. The score is the
// grounded fraction.
func (e *faithfulnessEvaluator) Evaluate(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
	if sample == nil {
		return nil, errors.New("sample is nil")
	}
	if e.judge == nil {
		return nil, errors.New("judge is nil")
	}
	if strings.TrimSpace(sample.Answer) == "" {
		return &evaluator.Result{
			Status: status.EvalStatusNotComputable,
			Reason: "generated answer is blank",
		}, nil
	}
	contexts := nonBlank(sample.Contexts)
	if len(contexts) == 0 {
		return &evaluator.Result{
			Status: status.EvalStatusNotComputable,
			Reason: "sample has no retrieval contexts",
		}, nil
	}

	statements, err := senttokenize.English(sample.Answer)
	if err != nil {
		return nil, fmt.Errorf("split answer into statements: %w", err)
	}
	if len(statements) == 0 {
		return &evaluator.Result{
			Status: status.EvalStatusNotComputable,
			Reason: "generated answer has no statements",
		}, nil
	}

	data := verdictPromptData{
		Question:   sample.Question,
		Contexts:   numberedList(contexts),
		Statements: numberedList(statements),
	}
	var buf bytes.Buffer
	if err := verdictPromptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute faithfulness prompt template: %w", err)
	}

	response, err := e.judge.Complete(ctx, buf.String())
	if err != nil {
		return nil, fmt.Errorf("judge faithfulness: %w", err)
	}

	grounded, total := countVerdicts(response)
	if total == 0 {
		return nil, errors.New("no verdict blocks found in judge response")
	}
	score := float64(grounded) / float64(total)
	return &evaluator.Result{
		Score:  score,
		Status: status.EvalStatusComputed,
		Reason: fmt.Sprintf("grounded %d of %d statements", grounded, total),
	}, nil
}

// countVerdicts tallies the grounding verdicts in the judge response.
func countVerdicts(content string) (grounded, total int) {
	for _, match := range verdictRegex.FindAllStringSubmatch(content, -1) {
		total++
		if strings.EqualFold(match[1], "yes") {
			grounded++
		}
	}
	return grounded, total
}

// nonBlank filters out empty and whitespace-only passages.
func nonBlank(passages []string) []string {
	kept := make([]string, 0, len(passages))
	for _, passage := range passages {
		if strings.TrimSpace(passage) != "" {
			kept = append(kept, passage)
		}
	}
	return kept
}

// numberedList renders items as a 1-based numbered list, one item per line.
func numberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, item)
	}
	return b.String()
}
