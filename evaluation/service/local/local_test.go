//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/registry"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

type stubEvaluator struct {
	name string
	fn   func(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error)
}

func (s *stubEvaluator) Name() string        { return s.name }
func (s *stubEvaluator) Description() string { return "stub evaluator" }

func (s *stubEvaluator) Evaluate(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
	return s.fn(ctx, sample)
}

// indexScorer scores each sample with the integer stored in its answer, which
// makes result-to-sample alignment observable.
func indexScorer(name string) evaluator.Evaluator {
	return &stubEvaluator{name: name, fn: func(_ context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
		score, err := strconv.Atoi(sample.Answer)
		if err != nil {
			return nil, err
		}
		return &evaluator.Result{Score: float64(score), Status: status.EvalStatusComputed}, nil
	}}
}

func newRegistry(t *testing.T, evaluators ...evaluator.Evaluator) registry.Registry {
	t.Helper()
	r := registry.New()
	for _, e := range evaluators {
		require.NoError(t, r.Register("", e))
	}
	return r
}

func newService(t *testing.T, r registry.Registry, opt ...service.Option) service.Service {
	t.Helper()
	opts := append([]service.Option{
		service.WithRegistry(r),
		service.WithProgressCallback(nil),
	}, opt...)
	svc, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, svc.Close()) })
	return svc
}

func indexedSamples(n int) []*dataset.Sample {
	samples := make([]*dataset.Sample, n)
	for i := range samples {
		samples[i] = &dataset.Sample{
			Question:    fmt.Sprintf("question %d", i),
			Answer:      strconv.Itoa(i),
			GroundTruth: strconv.Itoa(i),
		}
	}
	return samples
}

func newRequest(samples []*dataset.Sample, metricNames ...string) *service.EvaluateRequest {
	return &service.EvaluateRequest{
		DatasetID:    "bench.json",
		QuestionType: dataset.QuestionType1,
		Samples:      samples,
		MetricNames:  metricNames,
	}
}

func TestEvaluateAlignsResultsWithSamples(t *testing.T) {
	svc := newService(t, newRegistry(t, indexScorer("score")))

	const n = 8
	result, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(n), "score"))
	require.NoError(t, err)
	require.Len(t, result.SampleResults, n)
	for i, sampleResult := range result.SampleResults {
		require.NotNil(t, sampleResult)
		assert.Equal(t, i, sampleResult.SampleIndex)
		assert.Equal(t, dataset.QuestionType1, sampleResult.QuestionType)
		assert.Equal(t, status.EvalStatusComputed, sampleResult.FinalEvalStatus)
		require.Len(t, sampleResult.MetricResults, 1)
		assert.Equal(t, "score", sampleResult.MetricResults[0].MetricName)
		assert.Equal(t, float64(i), sampleResult.MetricResults[0].Score)
	}
}

func TestEvaluateNotifiesProgressPerSample(t *testing.T) {
	var mu sync.Mutex
	var notified []int
	var totals []int
	callback := func(completed, total int) {
		mu.Lock()
		defer mu.Unlock()
		notified = append(notified, completed)
		totals = append(totals, total)
	}
	svc := newService(t, newRegistry(t, indexScorer("score")),
		service.WithProgressCallback(callback))

	const n = 6
	_, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(n), "score"))
	require.NoError(t, err)

	// One notification per settled sample, counts in order, final one at 100%.
	require.Len(t, notified, n)
	for i, completed := range notified {
		assert.Equal(t, i+1, completed)
		assert.Equal(t, n, totals[i])
	}
}

func TestEvaluateEmptyGroup(t *testing.T) {
	notifications := 0
	svc := newService(t, newRegistry(t, indexScorer("score")),
		service.WithProgressCallback(func(completed, total int) { notifications++ }))

	result, err := svc.Evaluate(context.Background(), newRequest(nil, "score"))
	require.NoError(t, err)
	assert.Empty(t, result.SampleResults)
	assert.Zero(t, notifications)
}

func TestEvaluateRunsOnlyRequestedMetrics(t *testing.T) {
	var mu sync.Mutex
	invoked := 0
	counting := &stubEvaluator{name: "expensive", fn: func(_ context.Context, _ *dataset.Sample) (*evaluator.Result, error) {
		mu.Lock()
		invoked++
		mu.Unlock()
		return &evaluator.Result{Score: 1, Status: status.EvalStatusComputed}, nil
	}}
	svc := newService(t, newRegistry(t, indexScorer("score"), counting))

	result, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(3), "score"))
	require.NoError(t, err)
	assert.Zero(t, invoked)
	for _, sampleResult := range result.SampleResults {
		require.Len(t, sampleResult.MetricResults, 1)
		assert.Equal(t, "score", sampleResult.MetricResults[0].MetricName)
	}
}

func TestEvaluateIsolatesFailures(t *testing.T) {
	failing := &stubEvaluator{name: "flaky", fn: func(_ context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
		if sample.Answer == "1" {
			return nil, errors.New("judge unavailable")
		}
		return &evaluator.Result{Score: 0.5, Status: status.EvalStatusComputed}, nil
	}}
	svc := newService(t, newRegistry(t, indexScorer("score"), failing))

	result, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(3), "score", "flaky"))
	require.NoError(t, err)
	require.Len(t, result.SampleResults, 3)

	failed := result.SampleResults[1]
	assert.Equal(t, status.EvalStatusFailed, failed.FinalEvalStatus)
	assert.Contains(t, failed.ErrorMessage, "judge unavailable")
	require.Len(t, failed.MetricResults, 2)
	// The failing metric does not sink the healthy one on the same sample.
	assert.Equal(t, status.EvalStatusComputed, failed.MetricResults[0].EvalStatus)
	assert.Equal(t, status.EvalStatusFailed, failed.MetricResults[1].EvalStatus)
	assert.Contains(t, failed.MetricResults[1].Reason, "judge unavailable")

	for _, i := range []int{0, 2} {
		assert.Equal(t, status.EvalStatusComputed, result.SampleResults[i].FinalEvalStatus)
		assert.Empty(t, result.SampleResults[i].ErrorMessage)
	}
}

func TestEvaluateUnknownMetricFailsSample(t *testing.T) {
	svc := newService(t, newRegistry(t, indexScorer("score")))

	result, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(1), "score", "bleu"))
	require.NoError(t, err)
	require.Len(t, result.SampleResults, 1)
	sampleResult := result.SampleResults[0]
	assert.Equal(t, status.EvalStatusFailed, sampleResult.FinalEvalStatus)
	assert.Contains(t, sampleResult.ErrorMessage, "bleu")
	require.Len(t, sampleResult.MetricResults, 2)
	assert.Equal(t, status.EvalStatusComputed, sampleResult.MetricResults[0].EvalStatus)
	assert.Equal(t, status.EvalStatusFailed, sampleResult.MetricResults[1].EvalStatus)
}

func TestEvaluateNotComputableDoesNotFailSample(t *testing.T) {
	undefined := &stubEvaluator{name: "undefined", fn: func(_ context.Context, _ *dataset.Sample) (*evaluator.Result, error) {
		return &evaluator.Result{Status: status.EvalStatusNotComputable, Reason: "blank input"}, nil
	}}
	svc := newService(t, newRegistry(t, indexScorer("score"), undefined))

	result, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(1), "score", "undefined"))
	require.NoError(t, err)
	sampleResult := result.SampleResults[0]
	assert.Equal(t, status.EvalStatusComputed, sampleResult.FinalEvalStatus)
	assert.Empty(t, sampleResult.ErrorMessage)
}

func TestEvaluateBoundedParallelism(t *testing.T) {
	var mu sync.Mutex
	current, peak := 0, 0
	slow := &stubEvaluator{name: "slow", fn: func(_ context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
		mu.Lock()
		current++
		if current > peak {
			peak = current
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		current--
		mu.Unlock()
		score, err := strconv.Atoi(sample.Answer)
		if err != nil {
			return nil, err
		}
		return &evaluator.Result{Score: float64(score), Status: status.EvalStatusComputed}, nil
	}}

	var notified []int
	svc := newService(t, newRegistry(t, slow),
		service.WithParallelism(2),
		service.WithProgressCallback(func(completed, total int) {
			notified = append(notified, completed)
		}))

	const n = 6
	result, err := svc.Evaluate(context.Background(), newRequest(indexedSamples(n), "slow"))
	require.NoError(t, err)
	require.Len(t, result.SampleResults, n)
	for i, sampleResult := range result.SampleResults {
		assert.Equal(t, float64(i), sampleResult.MetricResults[0].Score)
	}
	assert.LessOrEqual(t, peak, 2)
	require.Len(t, notified, n)
	assert.Equal(t, n, notified[n-1])
}

func TestEvaluateRequestValidation(t *testing.T) {
	svc := newService(t, newRegistry(t, indexScorer("score")))

	_, err := svc.Evaluate(context.Background(), nil)
	require.Error(t, err)

	req := newRequest(indexedSamples(1), "score")
	req.DatasetID = ""
	_, err = svc.Evaluate(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset id")

	req = newRequest(indexedSamples(1), "score")
	req.QuestionType = "type9"
	_, err = svc.Evaluate(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question type")

	req = newRequest(indexedSamples(1))
	_, err = svc.Evaluate(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metric names")
}

func TestNewRejectsNegativeParallelism(t *testing.T) {
	_, err := New(service.WithParallelism(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism")
}

func TestNewRejectsNilRegistry(t *testing.T) {
	_, err := New(service.WithRegistry(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry")
}
