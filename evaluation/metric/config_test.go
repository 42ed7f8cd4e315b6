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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{MetricRougeScore, MetricAnswerCorrectness}, cfg.MetricNames(dataset.QuestionType1))
	assert.Equal(t, []string{MetricRougeScore, MetricAnswerCorrectness}, cfg.MetricNames(dataset.QuestionType2))
	assert.Equal(t, []string{MetricAnswerCorrectness, MetricCoverageScore}, cfg.MetricNames(dataset.QuestionType3))
	assert.Equal(t,
		[]string{MetricAnswerCorrectness, MetricCoverageScore, MetricFaithfulness},
		cfg.MetricNames(dataset.QuestionType4))
}

func TestDefaultConfigIsCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg[dataset.QuestionType1] = []string{MetricFaithfulness}
	assert.Equal(t,
		[]string{MetricRougeScore, MetricAnswerCorrectness},
		DefaultConfig().MetricNames(dataset.QuestionType1))
}

func TestMetricNamesReturnsCopy(t *testing.T) {
	cfg := DefaultConfig()
	names := cfg.MetricNames(dataset.QuestionType1)
	names[0] = "mutated"
	assert.Equal(t, []string{MetricRougeScore, MetricAnswerCorrectness}, cfg.MetricNames(dataset.QuestionType1))
}

func TestMetricNamesUnknownType(t *testing.T) {
	assert.Nil(t, DefaultConfig().MetricNames(dataset.QuestionType("type9")))
}

func TestValidate(t *testing.T) {
	bad := Config{dataset.QuestionType("type9"): {MetricRougeScore}}
	assert.Error(t, bad.Validate())

	bad = Config{dataset.QuestionType1: {"bleu"}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bleu")
}

func TestAllNames(t *testing.T) {
	assert.Equal(t, []string{
		MetricRougeScore,
		MetricAnswerCorrectness,
		MetricCoverageScore,
		MetricFaithfulness,
	}, AllNames())
}
