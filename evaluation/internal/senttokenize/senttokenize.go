//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package senttokenize splits English text into sentences using the bundled
// Punkt training data.
package senttokenize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	sentencesdata "github.com/neurosnap/sentences/data"
)

var (
	// englishOnce ensures the Punkt model is loaded once.
	englishOnce sync.Once
	// englishTokenizer holds the initialized sentence tokenizer instance.
	englishTokenizer *sentences.DefaultSentenceTokenizer
	// englishErr caches any initialization error.
	englishErr error
)

// English splits English text into sentences. Surrounding whitespace is
// trimmed and empty sentences are dropped.
func English(text string) ([]string, error) {
	englishOnce.Do(func() {
		b, err := sentencesdata.Asset("data/english.json")
		if err != nil {
			englishErr = fmt.Errorf("load english punkt data: %w", err)
			return
		}
		training, err := sentences.LoadTraining(b)
		if err != nil {
			englishErr = fmt.Errorf("parse english punkt data: %w", err)
			return
		}
		englishTokenizer = sentences.NewSentenceTokenizer(training)
	})
	if englishErr != nil {
		return nil, englishErr
	}
	if englishTokenizer == nil {
		return nil, fmt.Errorf("english sentence tokenizer is nil")
	}

	raw := englishTokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		s := strings.TrimSpace(sent.Text)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
