//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package faithfulness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

type fakeJudge struct {
	response  string
	err       error
	gotPrompt string
}

func (f *fakeJudge) Complete(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func sample() *dataset.Sample {
	return &dataset.Sample{
		Question:    "Where do penguins live?",
		Answer:      "Penguins live in the southern hemisphere. They thrive in Antarctica.",
		GroundTruth: "Penguins live almost exclusively in the southern hemisphere.",
		Contexts: []string{
			"Penguins are flightless birds found almost exclusively in the southern hemisphere.",
			"Large penguin colonies breed on the Antarctic coast.",
		},
	}
}

func TestEvaluateScoresGroundedFraction(t *testing.T) {
	j := &fakeJudge{response: "Statement: Penguins live in the southern hemisphere.\nVerdict: yes\n" +
		"Statement: They thrive in Antarctica.\nVerdict: no\n"}
	e := New(j)

	result, err := e.Evaluate(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, status.EvalStatusComputed, result.Status)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.Contains(t, result.Reason, "grounded 1 of 2")
	// Both contexts and both answer statements reach the judge, numbered.
	assert.Contains(t, j.gotPrompt, "1. Penguins are flightless birds")
	assert.Contains(t, j.gotPrompt, "2. Large penguin colonies")
	assert.Contains(t, j.gotPrompt, "1. Penguins live in the southern hemisphere.")
	assert.Contains(t, j.gotPrompt, "2. They thrive in Antarctica.")
}

func TestEvaluateIgnoresVerdictCase(t *testing.T) {
	j := &fakeJudge{response: "Statement: A\nverdict: YES\nStatement: B\nVERDICT: no\n"}
	e := New(j)

	result, err := e.Evaluate(context.Background(), sample())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
}

func TestEvaluateNoContextsNotComputable(t *testing.T) {
	e := New(&fakeJudge{response: "Statement: A\nVerdict: yes\n"})

	noContexts := sample()
	noContexts.Contexts = nil
	result, err := e.Evaluate(context.Background(), noContexts)
	require.NoError(t, err)
	assert.Equal(t, status.EvalStatusNotComputable, result.Status)

	blankContexts := sample()
	blankContexts.Contexts = []string{"", "   "}
	result, err = e.Evaluate(context.Background(), blankContexts)
	require.NoError(t, err)
	assert.Equal(t, status.EvalStatusNotComputable, result.Status)
	assert.Contains(t, result.Reason, "no retrieval contexts")
}

func TestEvaluateBlankAnswerNotComputable(t *testing.T) {
	e := New(&fakeJudge{response: "Statement: A\nVerdict: yes\n"})

	blank := sample()
	blank.Answer = "  "
	result, err := e.Evaluate(context.Background(), blank)
	require.NoError(t, err)
	assert.Equal(t, status.EvalStatusNotComputable, result.Status)
}

func TestEvaluateJudgeError(t *testing.T) {
	e := New(&fakeJudge{err: errors.New("rate limited")})

	_, err := e.Evaluate(context.Background(), sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "judge faithfulness")
}

func TestEvaluateUnparseableResponse(t *testing.T) {
	e := New(&fakeJudge{response: "Both statements look fine to me."})

	_, err := e.Evaluate(context.Background(), sample())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no verdict blocks")
}

func TestEvaluateNilSample(t *testing.T) {
	e := New(&fakeJudge{})

	_, err := e.Evaluate(context.Background(), nil)
	require.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, metric.MetricFaithfulness, New(&fakeJudge{}).Name())
}
