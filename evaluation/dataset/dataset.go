//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package dataset provides the benchmark dataset model for generation evaluation.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
)

// QuestionType identifies one of the four benchmark question categories.
// Each category is evaluated with its own fixed subset of metrics.
type QuestionType string

const (
	// QuestionType1 contains fact-retrieval questions.
	QuestionType1 QuestionType = "type1"
	// QuestionType2 contains complex-reasoning questions.
	QuestionType2 QuestionType = "type2"
	// QuestionType3 contains contextual-summarization questions.
	QuestionType3 QuestionType = "type3"
	// QuestionType4 contains creative-generation questions.
	QuestionType4 QuestionType = "type4"
)

// AllQuestionTypes returns the question types in their fixed evaluation order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{QuestionType1, QuestionType2, QuestionType3, QuestionType4}
}

// Valid reports whether t is one of the benchmark question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionType1, QuestionType2, QuestionType3, QuestionType4:
		return true
	default:
		return false
	}
}

// Sample is one evaluation unit: a question, the answer generated by the
// pipeline under evaluation, the reference answer, and the retrieved context
// passages the generator saw. Samples are immutable once loaded; their
// identity is positional within their question-type group.
type Sample struct {
	// Question is the benchmark question text.
	Question string
	// Answer is the model-generated answer.
	Answer string
	// GroundTruth is the reference (gold) answer.
	GroundTruth string
	// Contexts holds the retrieved context passages, possibly empty.
	Contexts []string
}

// sampleJSON is the wire form of a Sample. The context field accepts either
// a single string or a list of strings.
type sampleJSON struct {
	Question    string          `json:"question"`
	GroundTruth string          `json:"gold_answer"`
	Answer      string          `json:"generated_answer"`
	Contexts    json.RawMessage `json:"context,omitempty"`
}

// MarshalJSON implements json.Marshaler using the wire field names.
func (s Sample) MarshalJSON() ([]byte, error) {
	raw := sampleJSON{
		Question:    s.Question,
		GroundTruth: s.GroundTruth,
		Answer:      s.Answer,
	}
	if s.Contexts != nil {
		contexts, err := json.Marshal(s.Contexts)
		if err != nil {
			return nil, err
		}
		raw.Contexts = contexts
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler, accepting the context field as
// either a single string or a list of strings.
func (s *Sample) UnmarshalJSON(data []byte) error {
	var raw sampleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Question = raw.Question
	s.GroundTruth = raw.GroundTruth
	s.Answer = raw.Answer
	s.Contexts = nil
	if len(raw.Contexts) == 0 || string(raw.Contexts) == "null" {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw.Contexts, &single); err == nil {
		s.Contexts = []string{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw.Contexts, &many); err != nil {
		return fmt.Errorf("context must be a string or a list of strings: %w", err)
	}
	s.Contexts = many
	return nil
}

// Dataset is a benchmark input partitioned into question-type groups.
type Dataset struct {
	// DatasetID identifies the dataset, typically the input file path.
	DatasetID string `json:"dataset_id"`
	// Groups maps each question type to its ordered samples.
	Groups map[QuestionType][]*Sample `json:"groups"`
}

// Group returns the samples for the given question type, nil when absent.
func (d *Dataset) Group(t QuestionType) []*Sample {
	if d == nil {
		return nil
	}
	return d.Groups[t]
}

// SampleCount returns the total number of samples across all groups.
func (d *Dataset) SampleCount() int {
	if d == nil {
		return 0
	}
	count := 0
	for _, samples := range d.Groups {
		count += len(samples)
	}
	return count
}

// Manager defines the interface for loading benchmark datasets.
type Manager interface {
	// Get returns the Dataset identified by datasetID.
	Get(ctx context.Context, datasetID string) (*Dataset, error)
	// Close closes the manager and releases owned resources.
	Close() error
}
