//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package rouge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTokenize verifies lowercasing, punctuation stripping, and token filtering.
func TestTokenize(t *testing.T) {
	tok := NewTokenizer()
	cases := []struct {
		input    string
		expected []string
	}{
		{"Testing, one. TWO!", []string{"testing", "one", "two"}},
		{"GPT-4 scored 95%", []string{"gpt", "4", "scored", "95"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"?!...", []string{}},
		{"", []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, tok.Tokenize(tc.input), "input %q", tc.input)
	}
}
