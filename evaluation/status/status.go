//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package status provides the status of a metric computation.
package status

import "fmt"

// EvalStatus represents the outcome of a metric computation. A metric either
// produced a real score, was not computable for the given inputs, or was
// attempted and failed. Only computed scores take part in aggregation; the
// other two states are never conflated with a zero score.
type EvalStatus int

const (
	// EvalStatusUnknown represents an unknown computation status.
	EvalStatusUnknown EvalStatus = iota
	// EvalStatusComputed represents a successfully computed score.
	EvalStatusComputed
	// EvalStatusNotComputable represents inputs for which the metric is undefined.
	EvalStatusNotComputable
	// EvalStatusFailed represents a computation that was attempted and errored.
	EvalStatusFailed
)

// String returns the string representation of the computation status.
func (s EvalStatus) String() string {
	switch s {
	case EvalStatusComputed:
		return "computed"
	case EvalStatusNotComputable:
		return "not_computable"
	case EvalStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Summarize reduces the statuses of a set of metric computations to a single
// value. The precedence rules are:
// 1. If there is a Failed, the overall status is Failed.
// 2. If there is a Computed, the overall status is Computed.
// 3. Otherwise, the overall status is NotComputable.
func Summarize(statuses []EvalStatus) (EvalStatus, error) {
	combined := EvalStatusNotComputable
	for _, s := range statuses {
		switch s {
		case EvalStatusFailed:
			return EvalStatusFailed, nil
		case EvalStatusComputed:
			combined = EvalStatusComputed
		case EvalStatusNotComputable:
			continue
		default:
			return EvalStatusFailed, fmt.Errorf("unexpected eval status %v", s)
		}
	}
	return combined, nil
}
