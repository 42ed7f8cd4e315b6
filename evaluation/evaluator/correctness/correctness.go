//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package correctness provides the answer correctness evaluator.
package correctness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/embedder"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/metric"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

const (
	// f1Weight and similarityWeight blend the judge F1 with embedding
	// similarity. The weights follow the ragas answer_correctness default.
	f1Weight         = 0.75
	similarityWeight = 0.25
)

// classRegex extracts the statement classes from the judge response.
var classRegex = regexp.MustCompile(`(?im)^Class:\s*(TP|FP|FN)\s*$`)

// correctnessEvaluator scores factual agreement between the generated and
// gold answers, blending a judge statement classification with embedding
// similarity.
type correctnessEvaluator struct {
	judge    judge.Judge
	embedder embedder.Embedder
}

// New creates a new answer correctness evaluator.
func New(j judge.Judge, e embedder.Embedder) evaluator.Evaluator {
	return &correctnessEvaluator{judge: j, embedder: e}
}

// Name returns the name of this evaluator.
func (e *correctnessEvaluator) Name() string {
	return metric.MetricAnswerCorrectness
}

// Description returns a description of what this evaluator does.
func (e *correctnessEvaluator) Description() string {
	return "Measures factual agreement with the gold answer by blending judge statement classification with embedding similarity"
}

// Evaluate classifies the statements of both answers with the judge, embeds
// both answers, and blends the classification F1 with the cosine similarity.
// The judge call and both embedding calls proceed concurrently.
func (e *correctnessEvaluator) Evaluate(ctx context.Context, sample *dataset.Sample) (*evaluator.Result, error) {
	if sample == nil {
		return nil, errors.New("sample is nil")
	}
	if e.judge == nil {
		return nil, errors.New("judge is nil")
	}
	if e.embedder == nil {
		return nil, errors.New("embedder is nil")
	}
	if strings.TrimSpace(sample.Answer) == "" || strings.TrimSpace(sample.GroundTruth) == "" {
		return &evaluator.Result{
			Status: status.EvalStatusNotComputable,
			Reason: "generated or gold answer is blank",
		}, nil
	}

	data := classificationPromptData{
		Question:   sample.Question,
		GoldAnswer: sample.GroundTruth,
		Answer:     sample.Answer,
	}
	var buf bytes.Buffer
	if err := classificationPromptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute classification prompt template: %w", err)
	}

	var (
		wg            sync.WaitGroup
		judgeResponse string
		judgeErr      error
		answerVec     []float64
		answerErr     error
		goldVec       []float64
		goldErr       error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		judgeResponse, judgeErr = e.judge.Complete(ctx, buf.String())
	}()
	go func() {
		defer wg.Done()
		answerVec, answerErr = e.embedder.GetEmbedding(ctx, sample.Answer)
	}()
	go func() {
		defer wg.Done()
		goldVec, goldErr = e.embedder.GetEmbedding(ctx, sample.GroundTruth)
	}()
	wg.Wait()

	if judgeErr != nil {
		return nil, fmt.Errorf("judge classification: %w", judgeErr)
	}
	if answerErr != nil {
		return nil, fmt.Errorf("embed generated answer: %w", answerErr)
	}
	if goldErr != nil {
		return nil, fmt.Errorf("embed gold answer: %w", goldErr)
	}

	tp, fp, fn := countClasses(judgeResponse)
	if tp+fp+fn == 0 {
		return nil, errors.New("no classification blocks found in judge response")
	}
	f1 := float64(tp) / (float64(tp) + 0.5*float64(fp+fn))
	similarity := math.Max(0, cosineSimilarity(answerVec, goldVec))
	score := f1Weight*f1 + similarityWeight*similarity
	return &evaluator.Result{
		Score:  score,
		Status: status.EvalStatusComputed,
		Reason: fmt.Sprintf("tp=%d fp=%d fn=%d f1=%.4f similarity=%.4f", tp, fp, fn, f1, similarity),
	}, nil
}

// countClasses tallies the statement classes in the judge response.
func countClasses(content string) (tp, fp, fn int) {
	for _, match := range classRegex.FindAllStringSubmatch(content, -1) {
		switch strings.ToUpper(match[1]) {
		case "TP":
			tp++
		case "FP":
			fp++
		case "FN":
			fn++
		}
	}
	return tp, fp, fn
}

// cosineSimilarity computes the cosine similarity between two vectors.
// Mismatched or zero vectors score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
