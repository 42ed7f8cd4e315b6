//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"math"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/status"
)

// Aggregate computes the per-metric mean over the sample results of one group.
// Only results with status Computed contribute; not-computable and failed
// results are excluded from both the sum and the count rather than flattened
// to zero. A metric with no computed results maps to nil ("no data").
func Aggregate(sampleResults []*SampleResult, metricNames []string) GroupAggregate {
	sums := make(map[string]float64, len(metricNames))
	counts := make(map[string]int, len(metricNames))
	for _, sampleResult := range sampleResults {
		if sampleResult == nil {
			continue
		}
		for _, metricResult := range sampleResult.MetricResults {
			if metricResult == nil || metricResult.EvalStatus != status.EvalStatusComputed {
				continue
			}
			if math.IsNaN(metricResult.Score) || math.IsInf(metricResult.Score, 0) {
				continue
			}
			sums[metricResult.MetricName] += metricResult.Score
			counts[metricResult.MetricName]++
		}
	}
	aggregate := make(GroupAggregate, len(metricNames))
	for _, metricName := range metricNames {
		if count := counts[metricName]; count > 0 {
			mean := sums[metricName] / float64(count)
			aggregate[metricName] = &mean
			continue
		}
		aggregate[metricName] = nil
	}
	return aggregate
}
