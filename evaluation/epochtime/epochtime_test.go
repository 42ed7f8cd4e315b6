//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package epochtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalZero(t *testing.T) {
	data, err := json.Marshal(EpochTime{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestRoundTrip(t *testing.T) {
	original := EpochTime{Time: time.Date(2025, 6, 1, 12, 30, 15, 500_000_000, time.UTC)}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded EpochTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.WithinDuration(t, original.Time, decoded.Time, time.Millisecond)
}

func TestUnmarshalInvalid(t *testing.T) {
	var decoded EpochTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &decoded))
}
