//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package evaluation orchestrates generation evaluation runs and aggregates their results.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/epochtime"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/registry"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service/local"
)

// GenerationEvaluator evaluates generated answers against a benchmark dataset.
type GenerationEvaluator interface {
	// Evaluate runs evaluation against the specified dataset.
	Evaluate(ctx context.Context, datasetID string) (*EvaluationResult, error)
	// Close closes the evaluator and releases owned resources.
	Close() error
}

// GroupCallback is invoked after each question-type group completes, in
// evaluation order.
type GroupCallback func(result *report.GroupResult)

// New creates a GenerationEvaluator with the supplied options.
func New(opt ...Option) (GenerationEvaluator, error) {
	opts := newOptions(opt...)
	g := &generationEvaluator{
		datasetManager: opts.datasetManager,
		reportManager:  opts.reportManager,
		metricConfig:   opts.metricConfig,
		registry:       opts.registry,
		evalService:    opts.evalService,
		groupCallback:  opts.groupCallback,
	}
	if g.datasetManager == nil {
		return nil, errors.New("dataset manager is nil")
	}
	if g.reportManager == nil {
		return nil, errors.New("report manager is nil")
	}
	if err := g.metricConfig.Validate(); err != nil {
		return nil, fmt.Errorf("validate metric config: %w", err)
	}
	if opts.parallelism < 0 {
		return nil, errors.New("parallelism must not be negative")
	}
	// A custom service owns its own evaluator lookup; the registry only
	// matters when the default service has to be built.
	if g.evalService == nil {
		if g.registry == nil {
			if opts.judge == nil {
				return nil, errors.New("judge is nil")
			}
			if opts.embedder == nil {
				return nil, errors.New("embedder is nil")
			}
			defaultRegistry, err := DefaultRegistry(opts.judge, opts.embedder)
			if err != nil {
				return nil, fmt.Errorf("create default registry: %w", err)
			}
			g.registry = defaultRegistry
		}
		serviceOpts := []service.Option{
			service.WithRegistry(g.registry),
			service.WithParallelism(opts.parallelism),
		}
		if opts.progressCallback != nil {
			serviceOpts = append(serviceOpts, service.WithProgressCallback(opts.progressCallback))
		}
		evalService, err := local.New(serviceOpts...)
		if err != nil {
			return nil, fmt.Errorf("create eval service: %w", err)
		}
		g.evalService = evalService
	}
	return g, nil
}

// generationEvaluator is the default implementation of GenerationEvaluator.
type generationEvaluator struct {
	datasetManager dataset.Manager
	reportManager  report.Manager
	metricConfig   metric.Config
	registry       registry.Registry
	evalService    service.Service
	groupCallback  GroupCallback
}

// EvaluationResult contains the aggregated outcome of one evaluation run.
type EvaluationResult struct {
	ReportID      string                `json:"reportId"`      // ReportID identifies the persisted report.
	DatasetID     string                `json:"datasetId"`     // DatasetID identifies the evaluated dataset.
	ExecutionTime time.Duration         `json:"executionTime"` // ExecutionTime records the total latency for the evaluation run.
	GroupResults  []*report.GroupResult `json:"groupResults"`  // GroupResults contains the detailed per-group results.
	Report        *report.Report        `json:"report"`        // Report contains the persisted per-group aggregates.
}

// Evaluate evaluates the dataset group by group in the fixed question-type
// order and persists the aggregated report.
func (g *generationEvaluator) Evaluate(ctx context.Context, datasetID string) (*EvaluationResult, error) {
	if datasetID == "" {
		return nil, errors.New("dataset id is not configured")
	}
	start := time.Now()
	ds, err := g.datasetManager.Get(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}
	questionTypes := dataset.AllQuestionTypes()
	groupResults := make([]*report.GroupResult, 0, len(questionTypes))
	results := make(report.Results, len(questionTypes))
	// Groups run strictly one after another; concurrency lives inside the
	// service, across the samples of the current group.
	for _, questionType := range questionTypes {
		groupResult, err := g.evaluateGroup(ctx, datasetID, ds.Group(questionType), questionType)
		if err != nil {
			return nil, fmt.Errorf("evaluate group %s: %w", questionType, err)
		}
		groupResults = append(groupResults, groupResult)
		results[questionType] = groupResult.Aggregates
		if g.groupCallback != nil {
			g.groupCallback(groupResult)
		}
	}
	timestamp := epochtime.Now()
	evalReport := &report.Report{
		DatasetID:         datasetID,
		CreationTimestamp: &timestamp,
		Results:           results,
	}
	reportID, err := g.reportManager.Save(ctx, evalReport)
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	evalReport.ReportID = reportID
	return &EvaluationResult{
		ReportID:      reportID,
		DatasetID:     datasetID,
		ExecutionTime: time.Since(start),
		GroupResults:  groupResults,
		Report:        evalReport,
	}, nil
}

// evaluateGroup runs the group's configured metrics on its samples and
// aggregates the per-metric means.
func (g *generationEvaluator) evaluateGroup(ctx context.Context, datasetID string,
	samples []*dataset.Sample, questionType dataset.QuestionType) (*report.GroupResult, error) {
	metricNames := g.metricConfig.MetricNames(questionType)
	if len(metricNames) == 0 {
		return nil, fmt.Errorf("no metrics configured for question type %s", questionType)
	}
	evaluateResult, err := g.evalService.Evaluate(ctx, &service.EvaluateRequest{
		DatasetID:    datasetID,
		QuestionType: questionType,
		Samples:      samples,
		MetricNames:  metricNames,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate samples: %w", err)
	}
	if evaluateResult == nil {
		return nil, errors.New("evaluate result is nil")
	}
	return &report.GroupResult{
		QuestionType:  questionType,
		MetricNames:   metricNames,
		SampleResults: evaluateResult.SampleResults,
		Aggregates:    report.Aggregate(evaluateResult.SampleResults, metricNames),
	}, nil
}

// Close closes the evaluator and releases owned resources.
func (g *generationEvaluator) Close() error {
	var overallErr error
	if g.evalService != nil {
		if err := g.evalService.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close eval service: %w", err))
		}
	}
	if g.datasetManager != nil {
		if err := g.datasetManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close dataset manager: %w", err))
		}
	}
	if g.reportManager != nil {
		if err := g.reportManager.Close(); err != nil {
			overallErr = errors.Join(overallErr, fmt.Errorf("close report manager: %w", err))
		}
	}
	return overallErr
}
