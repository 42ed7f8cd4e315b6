//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package report

// Options is the options for the report manager.
type Options struct {
	// BaseDir is the directory reports are stored in.
	BaseDir string
	// Filename pins the manager to a single output file inside BaseDir.
	// When empty, each report is stored as "<reportID>.report.json".
	Filename string
}

// NewOptions creates options with the given option functions applied.
func NewOptions(opt ...Option) *Options {
	opts := &Options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option is the option function for the report manager.
type Option func(*Options)

// WithBaseDir sets the directory reports are stored in.
func WithBaseDir(baseDir string) Option {
	return func(opts *Options) {
		opts.BaseDir = baseDir
	}
}

// WithFilename pins the manager to a single output file inside the base
// directory. Saving overwrites the file in place.
func WithFilename(filename string) Option {
	return func(opts *Options) {
		opts.Filename = filename
	}
}
