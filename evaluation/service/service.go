//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package service provides the per-group sample evaluation service.
package service

import (
	"context"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
)

// Service defines the main interface for evaluation operations. One Evaluate
// call processes one question-type group of a dataset.
type Service interface {
	// Evaluate runs the requested metrics on every sample of the group and
	// returns one result per sample, index-aligned with the request.
	Evaluate(ctx context.Context, request *EvaluateRequest) (*EvaluateResult, error)

	// Close closes the service and releases owned resources.
	Close() error
}

// ProgressCallback is notified after each sample settles, in completion
// order. Notifications are serialized, so the final call observes
// completed == total.
type ProgressCallback func(completed, total int)

// EvaluateRequest represents a request to evaluate one question-type group.
type EvaluateRequest struct {
	// DatasetID identifies the dataset the samples were loaded from.
	DatasetID string `json:"dataset_id"`
	// QuestionType identifies the group being evaluated.
	QuestionType dataset.QuestionType `json:"question_type"`
	// Samples are the group's samples in input order.
	Samples []*dataset.Sample `json:"samples,omitempty"`
	// MetricNames are the metrics to run on every sample.
	MetricNames []string `json:"metric_names"`
}

// EvaluateResult represents the outcome of evaluating one question-type group.
type EvaluateResult struct {
	// QuestionType identifies the evaluated group.
	QuestionType dataset.QuestionType `json:"question_type"`
	// SampleResults holds exactly one result per requested sample, in the
	// sample order of the request regardless of completion order.
	SampleResults []*report.SampleResult `json:"sample_results"`
}
