//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package metric names the generation metrics and their per-question-type
// configuration.
package metric

// Metric name constants.
const (
	// MetricRougeScore measures lexical overlap between the generated and
	// gold answers.
	MetricRougeScore = "rouge_score"
	// MetricAnswerCorrectness measures factual agreement with the gold
	// answer, blending a judge verdict with embedding similarity.
	MetricAnswerCorrectness = "answer_correctness"
	// MetricCoverageScore measures how many key points of the gold answer
	// the generated answer covers.
	MetricCoverageScore = "coverage_score"
	// MetricFaithfulness measures how well the generated answer is grounded
	// in the retrieved contexts.
	MetricFaithfulness = "faithfulness"
)

// AllNames returns every metric name in presentation order.
func AllNames() []string {
	return []string{
		MetricRougeScore,
		MetricAnswerCorrectness,
		MetricCoverageScore,
		MetricFaithfulness,
	}
}
