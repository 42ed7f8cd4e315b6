//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Value  string
	Scores map[string]*float64
}

func TestCloneSuccess(t *testing.T) {
	score := 0.5
	src := &sample{
		Value:  "ok",
		Scores: map[string]*float64{"a": &score, "b": nil},
	}

	dst, err := Clone(src)
	assert.NoError(t, err)
	assert.NotSame(t, src, dst)
	assert.Equal(t, src, dst)

	// Mutating the clone must not touch the source.
	*dst.Scores["a"] = 0.9
	assert.Equal(t, 0.5, *src.Scores["a"])
}

func TestCloneNilInput(t *testing.T) {
	dst, err := Clone[sample](nil)
	assert.Error(t, err)
	assert.Nil(t, dst)
}

func TestCloneMarshalError(t *testing.T) {
	type bad struct {
		Ch chan int
	}
	dst, err := Clone(&bad{Ch: make(chan int)})
	assert.Error(t, err)
	assert.Nil(t, dst)
}
