//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package service

import (
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/evaluator/registry"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/log"
)

// Options holds the options for the evaluation service.
type Options struct {
	// Registry is used to look up the evaluator for each requested metric.
	Registry registry.Registry
	// Parallelism bounds the number of samples evaluated at the same time.
	// Zero means no bound: every sample of a group runs on its own goroutine.
	Parallelism int
	// ProgressCallback is notified after each sample settles.
	ProgressCallback ProgressCallback
}

// Option defines a function type for configuring the evaluation service.
type Option func(*Options)

// NewOptions creates a new Options with the default values.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		Registry: registry.New(),
		ProgressCallback: func(completed, total int) {
			log.Infof("completed sample %d/%d - %.0f%%", completed, total,
				float64(completed)/float64(total)*100)
		},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithRegistry sets the evaluator registry.
// An empty registry is used by default.
func WithRegistry(r registry.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithParallelism bounds the number of samples evaluated at the same time.
// Unbounded fan-out is used by default.
func WithParallelism(n int) Option {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithProgressCallback sets the progress notification callback.
// A logging callback is used by default; nil disables notifications.
func WithProgressCallback(cb ProgressCallback) Option {
	return func(o *Options) {
		o.ProgressCallback = cb
	}
}
