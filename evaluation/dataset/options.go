//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package dataset

// Options configure the local dataset manager.
type Options struct {
	// BaseDir is the directory dataset IDs are resolved against.
	// When empty, a dataset ID is used as a file path directly.
	BaseDir string
}

// NewOptions constructs Options with the default values.
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, o := range opts {
		o(options)
	}
	return options
}

// Option is a functional option for configuring the dataset manager.
type Option func(*Options)

// WithBaseDir sets the directory dataset IDs are resolved against.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}
