//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package clone provides deep-copy helpers for the in-memory managers.
package clone

import (
	"encoding/json"
	"errors"
)

// Clone performs a deep copy of src through its JSON representation.
// Cloned values may contain nil pointers ("no data" aggregates), so the
// codec must be one that encodes them; gob does not.
func Clone[T any](src *T) (*T, error) {
	if src == nil {
		return nil, errors.New("nil input")
	}
	data, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	var dst T
	if err := json.Unmarshal(data, &dst); err != nil {
		return nil, err
	}
	return &dst, nil
}
