//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/dataset"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/report"
	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/service"
)

type sampleEvalParam struct {
	ctx     context.Context
	req     *service.EvaluateRequest
	idx     int
	sample  *dataset.Sample
	svc     *local
	results []*report.SampleResult
	tracker *progressTracker
	wg      *sync.WaitGroup
}

func (p *sampleEvalParam) reset() {
	p.ctx = nil
	p.req = nil
	p.idx = 0
	p.sample = nil
	p.svc = nil
	p.results = nil
	p.tracker = nil
	p.wg = nil
}

var sampleEvalParamPool = &sync.Pool{
	New: func() any { return new(sampleEvalParam) },
}

func createSampleEvalPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*sampleEvalParam)
		if !ok {
			panic("sample evaluation pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			sampleEvalParamPool.Put(param)
		}()
		param.results[param.idx] = param.svc.evaluateSample(param.ctx, param.req, param.idx, param.sample)
		param.tracker.advance()
	})
	if err != nil {
		return nil, fmt.Errorf("create sample evaluation pool: %w", err)
	}
	return pool, nil
}
