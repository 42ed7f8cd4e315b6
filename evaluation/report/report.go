//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package report provides the result model for generation evaluation runs.
package report

import (
	"context"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/epochtime"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

// MetricResult represents the outcome of a single metric computation for one sample.
type MetricResult struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// Score obtained for this metric. Meaningful only when EvalStatus is Computed.
	Score float64 `json:"score,omitempty"`
	// EvalStatus of this metric computation.
	EvalStatus status.EvalStatus `json:"evalStatus,omitempty"`
	// Reason carries supporting detail: a score breakdown or a failure cause.
	Reason string `json:"reason,omitempty"`
}

// SampleResult represents the outcome of evaluating one sample against its
// requested metrics.
type SampleResult struct {
	// QuestionType identifies the group the sample belongs to.
	QuestionType dataset.QuestionType `json:"questionType,omitempty"`
	// SampleIndex is the position of the sample within its group.
	SampleIndex int `json:"sampleIndex,omitempty"`
	// MetricResults contains one result per requested metric.
	MetricResults []*MetricResult `json:"metricResults,omitempty"`
	// FinalEvalStatus summarizes the metric statuses for this sample.
	FinalEvalStatus status.EvalStatus `json:"finalEvalStatus,omitempty"`
	// ErrorMessage joins the failure reasons when any metric computation failed.
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// GroupAggregate maps a metric name to the mean of its computed scores within
// one question-type group. A nil value marks "no data": every result for the
// metric was non-computed. It serializes as JSON null, which keeps it
// distinguishable from a genuine zero score across a save/load round trip.
type GroupAggregate map[string]*float64

// Mean returns the aggregate for the metric and whether it carries data.
func (g GroupAggregate) Mean(metricName string) (float64, bool) {
	mean, ok := g[metricName]
	if !ok || mean == nil {
		return 0, false
	}
	return *mean, true
}

// Results is the output document shape: question type to group aggregate.
type Results map[dataset.QuestionType]GroupAggregate

// GroupResult represents the outcome of evaluating one question-type group.
type GroupResult struct {
	// QuestionType identifies the group.
	QuestionType dataset.QuestionType `json:"questionType,omitempty"`
	// MetricNames lists the metrics requested for this group.
	MetricNames []string `json:"metricNames,omitempty"`
	// SampleResults contains one result per sample, index-aligned with the group.
	SampleResults []*SampleResult `json:"sampleResults,omitempty"`
	// Aggregates contains the per-metric means for this group.
	Aggregates GroupAggregate `json:"aggregates,omitempty"`
}

// Report is the aggregate outcome of an evaluation run. Only Results is
// written to the output file; the remaining fields are process metadata.
type Report struct {
	// ReportID uniquely identifies this report.
	ReportID string `json:"reportId,omitempty"`
	// DatasetID identifies the evaluated dataset.
	DatasetID string `json:"datasetId,omitempty"`
	// CreationTimestamp when this report was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
	// Results contains the per-group aggregates.
	Results Results `json:"results,omitempty"`
}

// Manager defines the interface for persisting evaluation reports.
type Manager interface {
	// Save stores the report and returns its report ID, assigning one when absent.
	Save(ctx context.Context, report *Report) (string, error)
	// Get returns a previously saved report by ID.
	Get(ctx context.Context, reportID string) (*Report, error)
	// List returns the IDs of all saved reports.
	List(ctx context.Context) ([]string, error)
	// Close closes the manager and releases owned resources.
	Close() error
}
