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
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	datasetlocal "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset/local"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/embedder"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/registry"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
	reportinmemory "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report/inmemory"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service"
)

type options struct {
	datasetManager   dataset.Manager
	reportManager    report.Manager
	metricConfig     metric.Config
	registry         registry.Registry
	judge            judge.Judge
	embedder         embedder.Embedder
	evalService      service.Service
	parallelism      int
	progressCallback service.ProgressCallback
	groupCallback    GroupCallback
}

func newOptions(opt ...Option) *options {
	opts := &options{
		datasetManager: datasetlocal.New(),
		reportManager:  reportinmemory.New(),
		metricConfig:   metric.DefaultConfig(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option defines a function type for configuring the generation evaluator.
type Option func(*options)

// WithDatasetManager sets the dataset manager.
// Local file dataset manager is used by default.
func WithDatasetManager(m dataset.Manager) Option {
	return func(o *options) {
		o.datasetManager = m
	}
}

// WithReportManager sets the report manager.
// InMemory report manager is used by default.
func WithReportManager(m report.Manager) Option {
	return func(o *options) {
		o.reportManager = m
	}
}

// WithMetricConfig sets the question type to metric names mapping.
// The benchmark default config is used by default.
func WithMetricConfig(c metric.Config) Option {
	return func(o *options) {
		o.metricConfig = c
	}
}

// WithRegistry sets the evaluator registry.
// When unset, a default registry is built from the judge and embedder.
func WithRegistry(r registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithJudge sets the judge used by the default registry's evaluators.
func WithJudge(j judge.Judge) Option {
	return func(o *options) {
		o.judge = j
	}
}

// WithEmbedder sets the embedder used by the default registry's evaluators.
func WithEmbedder(e embedder.Embedder) Option {
	return func(o *options) {
		o.embedder = e
	}
}

// WithEvaluationService sets the evaluation service.
// A local service wired to the registry is used by default.
func WithEvaluationService(s service.Service) Option {
	return func(o *options) {
		o.evalService = s
	}
}

// WithParallelism bounds the number of samples evaluated at the same time
// within a group. Unbounded fan-out is used by default.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithProgressCallback sets the per-sample progress callback passed to the
// evaluation service. The service's logging callback is used by default.
func WithProgressCallback(cb service.ProgressCallback) Option {
	return func(o *options) {
		o.progressCallback = cb
	}
}

// WithGroupCallback sets the callback invoked after each question-type group
// completes. No callback is invoked by default.
func WithGroupCallback(cb GroupCallback) Option {
	return func(o *options) {
		o.groupCallback = cb
	}
}
