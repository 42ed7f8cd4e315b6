//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalStatusString(t *testing.T) {
	tests := map[EvalStatus]string{
		EvalStatusUnknown:       "unknown",
		EvalStatusComputed:      "computed",
		EvalStatusNotComputable: "not_computable",
		EvalStatusFailed:        "failed",
		EvalStatus(99):          "unknown",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, input.String())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		statuses []EvalStatus
		expected EvalStatus
	}{
		{
			name:     "empty defaults to not computable",
			statuses: nil,
			expected: EvalStatusNotComputable,
		},
		{
			name:     "failed wins over computed",
			statuses: []EvalStatus{EvalStatusComputed, EvalStatusFailed, EvalStatusComputed},
			expected: EvalStatusFailed,
		},
		{
			name:     "computed wins over not computable",
			statuses: []EvalStatus{EvalStatusNotComputable, EvalStatusComputed},
			expected: EvalStatusComputed,
		},
		{
			name:     "all not computable",
			statuses: []EvalStatus{EvalStatusNotComputable, EvalStatusNotComputable},
			expected: EvalStatusNotComputable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.statuses)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSummarizeUnexpectedStatus(t *testing.T) {
	got, err := Summarize([]EvalStatus{EvalStatusComputed, EvalStatus(42)})
	assert.Error(t, err)
	assert.Equal(t, EvalStatusFailed, got)
}
