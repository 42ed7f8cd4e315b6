//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Command graphrag-eval evaluates generated answers from a benchmark JSON
// file and writes the per-group aggregate scores.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation"
	datasetlocal "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset/local"
	embedderopenai "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/embedder/openai"
	judgeopenai "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge/openai"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
	reportinmemory "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report/inmemory"
	reportlocal "github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report/local"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/log"
)

var (
	// dataFile points to the benchmark JSON file with the generated answers.
	dataFile = flag.String("data-file", "", "Path to the benchmark JSON file to evaluate (required)")
	// modelName selects the judge model for the LLM-based metrics.
	modelName = flag.String("model", judgeopenai.DefaultModel, "Judge model used for LLM-based metrics")
	// baseURL points the judge client at an OpenAI-compatible endpoint.
	baseURL = flag.String("base-url", "https://api.openai.com/v1", "Base URL of the OpenAI-compatible judge endpoint")
	// embeddingModel selects the embedding model for answer correctness.
	embeddingModel = flag.String("embedding-model", embedderopenai.DefaultModel, "Embedding model used for answer correctness")
	// embeddingBaseURL points the embedding client at its own endpoint.
	embeddingBaseURL = flag.String("embedding-base-url", "", "Base URL of the embedding endpoint (defaults to -base-url)")
	// outputFile is where the aggregated results are written.
	outputFile = flag.String("output-file", "evaluation_results.json", "Path of the aggregated results file (empty disables persistence)")
	// parallelism bounds concurrent sample evaluations within a group.
	parallelism = flag.Int("parallelism", 0, "Max concurrent sample evaluations per group (0 = unbounded)")
	// logLevel controls logging verbosity.
	logLevel = flag.String("log-level", log.LevelInfo, "Log level: debug, info, warn, error or fatal")
)

func main() {
	flag.Parse()
	log.SetLevel(*logLevel)
	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: -data-file")
		flag.Usage()
		os.Exit(2)
	}
	// The judge and embedder share one credential. Checking it up front keeps
	// a misconfigured run from failing halfway through the first group.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatalf("OPENAI_API_KEY environment variable is not set")
	}

	judgeBaseURL := *baseURL
	embedBaseURL := *embeddingBaseURL
	if embedBaseURL == "" {
		embedBaseURL = judgeBaseURL
	}
	judgeClient := judgeopenai.New(
		judgeopenai.WithModel(*modelName),
		judgeopenai.WithAPIKey(apiKey),
		judgeopenai.WithBaseURL(judgeBaseURL),
	)
	embedderClient := embedderopenai.New(
		embedderopenai.WithModel(*embeddingModel),
		embedderopenai.WithAPIKey(apiKey),
		embedderopenai.WithBaseURL(embedBaseURL),
	)

	generationEvaluator, err := evaluation.New(
		evaluation.WithDatasetManager(datasetlocal.New()),
		evaluation.WithReportManager(newReportManager(*outputFile)),
		evaluation.WithJudge(judgeClient),
		evaluation.WithEmbedder(embedderClient),
		evaluation.WithParallelism(*parallelism),
		evaluation.WithGroupCallback(printGroup),
	)
	if err != nil {
		log.Fatalf("create evaluator: %v", err)
	}
	defer generationEvaluator.Close()

	result, err := generationEvaluator.Evaluate(context.Background(), *dataFile)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	printSummary(result, *outputFile)
}

// newReportManager picks the report backend: a file-backed manager pinned to
// the output path, or an in-memory one when persistence is disabled.
func newReportManager(outputPath string) report.Manager {
	if outputPath == "" {
		return reportinmemory.New()
	}
	return reportlocal.New(
		report.WithBaseDir(filepath.Dir(outputPath)),
		report.WithFilename(filepath.Base(outputPath)),
	)
}

// printGroup prints one group's aggregate scores as soon as the group
// completes.
func printGroup(groupResult *report.GroupResult) {
	fmt.Printf("%s (%d samples)\n", groupResult.QuestionType, len(groupResult.SampleResults))
	for _, metricName := range groupResult.MetricNames {
		fmt.Printf("  %s: %s\n", metricName, formatMean(groupResult.Aggregates, metricName))
	}
	fmt.Println()
}

// printSummary prints the final scores for all groups.
func printSummary(result *evaluation.EvaluationResult, outputPath string) {
	fmt.Println("Evaluation completed")
	fmt.Printf("Dataset: %s\n", result.DatasetID)
	fmt.Printf("Execution time: %s\n", result.ExecutionTime.Round(time.Millisecond))
	for _, groupResult := range result.GroupResults {
		fmt.Printf("%s:", groupResult.QuestionType)
		for _, metricName := range groupResult.MetricNames {
			fmt.Printf(" %s=%s", metricName, formatMean(groupResult.Aggregates, metricName))
		}
		fmt.Println()
	}
	if outputPath == "" {
		fmt.Printf("Results were not persisted (report %s kept in memory)\n", result.ReportID)
		return
	}
	fmt.Printf("Results saved to: %s\n", outputPath)
}

// formatMean renders a metric mean, printing "no data" when every sample of
// the group was non-computed for the metric.
func formatMean(aggregates report.GroupAggregate, metricName string) string {
	mean, ok := aggregates.Mean(metricName)
	if !ok {
		return "no data"
	}
	return fmt.Sprintf("%.4f", mean)
}
