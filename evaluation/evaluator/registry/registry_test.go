//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

type stubEvaluator struct {
	name        string
	description string
}

func (s *stubEvaluator) Name() string {
	return s.name
}

func (s *stubEvaluator) Description() string {
	return s.description
}

func (s *stubEvaluator) Evaluate(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
	if ctx == nil {
		return nil, errors.New("context is nil")
	}
	return &evaluator.Result{
		Score:  1.0,
		Status: status.EvalStatusComputed,
	}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := New()
	custom := &stubEvaluator{name: "custom", description: "custom evaluator"}

	err := reg.Register("custom", custom)
	assert.NoError(t, err)

	got, err := reg.Get("custom")
	assert.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestRegistryOverwrite(t *testing.T) {
	reg := New()
	first := &stubEvaluator{name: "duplicate"}
	err := reg.Register("duplicate", first)
	assert.NoError(t, err)

	second := &stubEvaluator{name: "duplicate"}
	err = reg.Register("duplicate", second)
	assert.NoError(t, err)

	got, err := reg.Get("duplicate")
	assert.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRegistryRegisterDeriveName(t *testing.T) {
	reg := New()
	custom := &stubEvaluator{name: "derived"}

	err := reg.Register("", custom)
	assert.NoError(t, err)

	got, err := reg.Get("derived")
	assert.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestRegistryRegisterErrors(t *testing.T) {
	reg := New()

	err := reg.Register("nil", nil)
	assert.Error(t, err)

	err = reg.Register("", &stubEvaluator{})
	assert.Error(t, err)
}

func TestRegistryGetMissing(t *testing.T) {
	reg := New()

	_, err := reg.Get("missing")
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistryList(t *testing.T) {
	reg := New()
	assert.Empty(t, reg.List())

	assert.NoError(t, reg.Register("b", &stubEvaluator{name: "b"}))
	assert.NoError(t, reg.Register("a", &stubEvaluator{name: "a"}))

	assert.Equal(t, []string{"a", "b"}, reg.List())
}
