//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package metric

import (
	"fmt"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
)

// Config maps each question type to the metrics evaluated for it.
type Config map[dataset.QuestionType][]string

// DefaultConfig returns the standard metric selection per question type.
// Fact-retrieval and complex-reasoning answers are graded on lexical overlap
// and correctness; summarization adds coverage in place of overlap; creative
// generation additionally checks faithfulness to the retrieved contexts.
// The returned config is a fresh copy and safe to modify.
func DefaultConfig() Config {
	return Config{
		dataset.QuestionType1: {MetricRougeScore, MetricAnswerCorrectness},
		dataset.QuestionType2: {MetricRougeScore, MetricAnswerCorrectness},
		dataset.QuestionType3: {MetricAnswerCorrectness, MetricCoverageScore},
		dataset.QuestionType4: {MetricAnswerCorrectness, MetricCoverageScore, MetricFaithfulness},
	}
}

// MetricNames returns a copy of the metric names configured for the question
// type. Unknown types map to no metrics.
func (c Config) MetricNames(questionType dataset.QuestionType) []string {
	names, ok := c[questionType]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Validate checks that every configured question type and metric name is known.
func (c Config) Validate() error {
	known := make(map[string]struct{})
	for _, name := range AllNames() {
		known[name] = struct{}{}
	}
	for questionType, names := range c {
		if !questionType.Valid() {
			return fmt.Errorf("unknown question type %q in metric config", questionType)
		}
		for _, name := range names {
			if _, ok := known[name]; !ok {
				return fmt.Errorf("unknown metric %q configured for question type %s", name, questionType)
			}
		}
	}
	return nil
}
