//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local implementation of service.Service.
//
// By default every sample of a group is evaluated on its own goroutine, all
// started before any is awaited. This full fan-out has no backpressure, so a
// large group opens as many concurrent judge and embedding requests as it has
// samples; service.WithParallelism bounds the fan-out with a worker pool.
package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/registry"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/log"
)

// local is a local implementation of service.Service.
type local struct {
	registry         registry.Registry
	parallelism      int
	progressCallback service.ProgressCallback
	samplePool       *ants.PoolWithFunc
}

// New returns a new local evaluation service.
// If no service.Option is provided, the service will use the default options.
func New(opt ...service.Option) (service.Service, error) {
	opts := service.NewOptions(opt...)
	if opts.Registry == nil {
		return nil, errors.New("registry is nil")
	}
	if opts.Parallelism < 0 {
		return nil, errors.New("parallelism must not be negative")
	}
	svc := &local{
		registry:         opts.Registry,
		parallelism:      opts.Parallelism,
		progressCallback: opts.ProgressCallback,
	}
	if svc.parallelism > 0 {
		pool, err := createSampleEvalPool(svc.parallelism)
		if err != nil {
			return nil, fmt.Errorf("create sample evaluation pool: %w", err)
		}
		svc.samplePool = pool
	}
	return svc, nil
}

// Close closes the evaluation service and releases owned resources.
func (s *local) Close() error {
	if s.samplePool != nil {
		s.samplePool.Release()
	}
	return nil
}

// Evaluate runs the requested metrics on every sample of the group and
// returns one result per sample, index-aligned with the request.
func (s *local) Evaluate(ctx context.Context, req *service.EvaluateRequest) (*service.EvaluateResult, error) {
	if err := validateEvaluateRequest(req); err != nil {
		return nil, fmt.Errorf("validate evaluate request: %w", err)
	}
	results := make([]*report.SampleResult, len(req.Samples))
	if len(req.Samples) == 0 {
		return &service.EvaluateResult{QuestionType: req.QuestionType, SampleResults: results}, nil
	}
	tracker := newProgressTracker(len(req.Samples), s.progressCallback)
	if s.samplePool != nil {
		s.evaluateSamplesPooled(ctx, req, results, tracker)
	} else {
		s.evaluateSamplesUnbounded(ctx, req, results, tracker)
	}
	return &service.EvaluateResult{QuestionType: req.QuestionType, SampleResults: results}, nil
}

func validateEvaluateRequest(req *service.EvaluateRequest) error {
	if req == nil {
		return errors.New("evaluate request is nil")
	}
	if req.DatasetID == "" {
		return errors.New("dataset id is empty")
	}
	if !req.QuestionType.Valid() {
		return fmt.Errorf("question type %q is invalid", req.QuestionType)
	}
	if len(req.MetricNames) == 0 {
		return errors.New("metric names are empty")
	}
	return nil
}

// evaluateSamplesUnbounded starts one goroutine per sample and waits for all
// of them.
func (s *local) evaluateSamplesUnbounded(ctx context.Context, req *service.EvaluateRequest,
	results []*report.SampleResult, tracker *progressTracker) {
	var wg sync.WaitGroup
	for idx, sample := range req.Samples {
		idx, sample := idx, sample
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[idx] = s.evaluateSample(ctx, req, idx, sample)
			tracker.advance()
		}()
	}
	wg.Wait()
}

// evaluateSamplesPooled submits one task per sample to the worker pool and
// waits for all of them. A task that cannot be submitted settles its sample
// as failed so the result slice and the progress count stay complete.
func (s *local) evaluateSamplesPooled(ctx context.Context, req *service.EvaluateRequest,
	results []*report.SampleResult, tracker *progressTracker) {
	var wg sync.WaitGroup
	for idx, sample := range req.Samples {
		wg.Add(1)
		param := sampleEvalParamPool.Get().(*sampleEvalParam)
		param.ctx = ctx
		param.req = req
		param.idx = idx
		param.sample = sample
		param.svc = s
		param.results = results
		param.tracker = tracker
		param.wg = &wg
		if err := s.samplePool.Invoke(param); err != nil {
			wg.Done()
			results[idx] = s.failedSampleResult(req, idx,
				fmt.Errorf("submit evaluation task for sample %d: %w", idx, err))
			tracker.advance()
			param.reset()
			sampleEvalParamPool.Put(param)
		}
	}
	wg.Wait()
}

// evaluateSample runs every requested metric on the sample concurrently and
// settles once all of them finish.
func (s *local) evaluateSample(ctx context.Context, req *service.EvaluateRequest,
	idx int, sample *dataset.Sample) *report.SampleResult {
	metricResults := make([]*report.MetricResult, len(req.MetricNames))
	var wg sync.WaitGroup
	for i, metricName := range req.MetricNames {
		i, metricName := i, metricName
		wg.Add(1)
		go func() {
			defer wg.Done()
			metricResults[i] = s.evaluateMetric(ctx, metricName, sample)
		}()
	}
	wg.Wait()
	return newSampleResult(req.QuestionType, idx, metricResults)
}

// evaluateMetric locates the evaluator registered for the metric and runs it.
// Any error becomes a failed metric result so one metric cannot sink the
// whole sample.
func (s *local) evaluateMetric(ctx context.Context, metricName string, sample *dataset.Sample) *report.MetricResult {
	metricEvaluator, err := s.registry.Get(metricName)
	if err != nil {
		return failedMetricResult(metricName, fmt.Errorf("get evaluator: %w", err))
	}
	result, err := metricEvaluator.Evaluate(ctx, sample)
	if err != nil {
		return failedMetricResult(metricName, err)
	}
	if result == nil {
		return failedMetricResult(metricName, errors.New("evaluator returned nil result"))
	}
	return &report.MetricResult{
		MetricName: metricName,
		Score:      result.Score,
		EvalStatus: result.Status,
		Reason:     result.Reason,
	}
}

// failedSampleResult builds a sample result whose every metric failed with
// the given error.
func (s *local) failedSampleResult(req *service.EvaluateRequest, idx int, err error) *report.SampleResult {
	metricResults := make([]*report.MetricResult, 0, len(req.MetricNames))
	for _, metricName := range req.MetricNames {
		metricResults = append(metricResults, failedMetricResult(metricName, err))
	}
	return newSampleResult(req.QuestionType, idx, metricResults)
}

func failedMetricResult(metricName string, err error) *report.MetricResult {
	return &report.MetricResult{
		MetricName: metricName,
		EvalStatus: status.EvalStatusFailed,
		Reason:     err.Error(),
	}
}

// newSampleResult summarizes the metric results into the sample's final
// status and joins the failure reasons into its error message.
func newSampleResult(questionType dataset.QuestionType, idx int,
	metricResults []*report.MetricResult) *report.SampleResult {
	statuses := make([]status.EvalStatus, 0, len(metricResults))
	var evalErr *multierror.Error
	for _, metricResult := range metricResults {
		statuses = append(statuses, metricResult.EvalStatus)
		if metricResult.EvalStatus == status.EvalStatusFailed {
			evalErr = multierror.Append(evalErr,
				fmt.Errorf("metric %s: %s", metricResult.MetricName, metricResult.Reason))
		}
	}
	finalStatus, err := status.Summarize(statuses)
	if err != nil {
		finalStatus = status.EvalStatusFailed
		evalErr = multierror.Append(evalErr, err)
	}
	result := &report.SampleResult{
		QuestionType:    questionType,
		SampleIndex:     idx,
		MetricResults:   metricResults,
		FinalEvalStatus: finalStatus,
	}
	if evalErr != nil {
		result.ErrorMessage = evalErr.Error()
		log.Warnf("sample %d of group %s failed: %v", idx, questionType, evalErr)
	}
	return result
}
