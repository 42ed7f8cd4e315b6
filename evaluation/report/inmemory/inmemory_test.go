//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package inmemory

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/epochtime"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
)

func newReport() *report.Report {
	mean := 0.5
	now := epochtime.Now()
	return &report.Report{
		DatasetID:         "questions.json",
		CreationTimestamp: &now,
		Results: report.Results{
			dataset.QuestionType4: report.GroupAggregate{
				"faithfulness":       &mean,
				"answer_correctness": nil,
			},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	mgr := New()
	defer mgr.Close()

	id, err := mgr.Save(context.Background(), newReport())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := mgr.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ReportID)
	assert.Equal(t, "questions.json", got.DatasetID)
	require.NotNil(t, got.CreationTimestamp)
	group := got.Results[dataset.QuestionType4]
	require.Contains(t, group, "answer_correctness")
	assert.Nil(t, group["answer_correctness"])
	mean, ok := group.Mean("faithfulness")
	require.True(t, ok)
	assert.InDelta(t, 0.5, mean, 1e-9)
}

func TestGetReturnsCopy(t *testing.T) {
	mgr := New()
	defer mgr.Close()

	id, err := mgr.Save(context.Background(), newReport())
	require.NoError(t, err)

	first, err := mgr.Get(context.Background(), id)
	require.NoError(t, err)
	*first.Results[dataset.QuestionType4]["faithfulness"] = 0.0
	first.DatasetID = "mutated"

	second, err := mgr.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "questions.json", second.DatasetID)
	mean, ok := second.Results[dataset.QuestionType4].Mean("faithfulness")
	require.True(t, ok)
	assert.InDelta(t, 0.5, mean, 1e-9)
}

func TestSaveNilReport(t *testing.T) {
	mgr := New()
	defer mgr.Close()

	_, err := mgr.Save(context.Background(), nil)
	assert.Error(t, err)
}

func TestGetMissing(t *testing.T) {
	mgr := New()
	defer mgr.Close()

	_, err := mgr.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestList(t *testing.T) {
	mgr := New()
	defer mgr.Close()

	_, err := mgr.Save(context.Background(), &report.Report{ReportID: "b"})
	require.NoError(t, err)
	_, err = mgr.Save(context.Background(), &report.Report{ReportID: "a"})
	require.NoError(t, err)

	ids, err := mgr.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}
