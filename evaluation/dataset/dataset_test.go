//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleUnmarshalStringContext(t *testing.T) {
	data := []byte(`{
		"question": "What is a graph?",
		"gold_answer": "A set of nodes and edges.",
		"generated_answer": "Nodes connected by edges.",
		"context": "Graphs consist of nodes and edges."
	}`)

	var s Sample
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, "What is a graph?", s.Question)
	assert.Equal(t, "A set of nodes and edges.", s.GroundTruth)
	assert.Equal(t, "Nodes connected by edges.", s.Answer)
	assert.Equal(t, []string{"Graphs consist of nodes and edges."}, s.Contexts)
}

func TestSampleUnmarshalArrayContext(t *testing.T) {
	data := []byte(`{
		"question": "q",
		"gold_answer": "g",
		"generated_answer": "a",
		"context": ["first passage", "second passage"]
	}`)

	var s Sample
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, []string{"first passage", "second passage"}, s.Contexts)
}

func TestSampleUnmarshalMissingContext(t *testing.T) {
	data := []byte(`{"question": "q", "gold_answer": "g", "generated_answer": "a"}`)

	var s Sample
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Nil(t, s.Contexts)
}

func TestSampleUnmarshalInvalidContext(t *testing.T) {
	data := []byte(`{"question": "q", "gold_answer": "g", "generated_answer": "a", "context": 42}`)

	var s Sample
	assert.Error(t, json.Unmarshal(data, &s))
}

func TestSampleMarshalRoundTrip(t *testing.T) {
	original := Sample{
		Question:    "q",
		Answer:      "a",
		GroundTruth: "g",
		Contexts:    []string{"c1", "c2"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"gold_answer"`)
	assert.Contains(t, string(data), `"generated_answer"`)

	var decoded Sample
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestQuestionTypeValid(t *testing.T) {
	for _, questionType := range AllQuestionTypes() {
		assert.True(t, questionType.Valid())
	}
	assert.False(t, QuestionType("type5").Valid())
	assert.False(t, QuestionType("").Valid())
}

func TestAllQuestionTypesOrder(t *testing.T) {
	assert.Equal(
		t,
		[]QuestionType{QuestionType1, QuestionType2, QuestionType3, QuestionType4},
		AllQuestionTypes(),
	)
}

func TestDatasetGroupAndCount(t *testing.T) {
	ds := &Dataset{
		DatasetID: "bench.json",
		Groups: map[QuestionType][]*Sample{
			QuestionType1: {{Question: "q1"}},
			QuestionType2: {{Question: "q2"}, {Question: "q3"}},
		},
	}

	assert.Len(t, ds.Group(QuestionType2), 2)
	assert.Nil(t, ds.Group(QuestionType3))
	assert.Equal(t, 3, ds.SampleCount())

	var nilDataset *Dataset
	assert.Nil(t, nilDataset.Group(QuestionType1))
	assert.Equal(t, 0, nilDataset.SampleCount())
}
