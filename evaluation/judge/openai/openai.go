//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-backed judge implementation.
package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/GraphRAG-Bench/GraphRAG-Benchmark/evaluation/judge"
)

// Verify that Judge implements the judge.Judge interface.
var _ judge.Judge = (*Judge)(nil)

const (
	// DefaultModel is the default judge model.
	DefaultModel = "gpt-4-turbo"
	// DefaultMaxRetries is the default maximum number of client retries.
	DefaultMaxRetries = 3
	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 30 * time.Second
)

// Judge implements the judge.Judge interface on the OpenAI chat completions
// API. Grading prompts are sent as a single user message at temperature zero
// so verdicts stay reproducible.
type Judge struct {
	client         openai.Client
	model          string
	apiKey         string
	baseURL        string
	maxRetries     int
	timeout        time.Duration
	requestOptions []option.RequestOption
}

// Option represents a functional option for configuring the Judge.
type Option func(*Judge)

// WithModel sets the judge model to use.
func WithModel(model string) Option {
	return func(j *Judge) {
		j.model = model
	}
}

// WithAPIKey sets the OpenAI API key.
// If not provided, will use OPENAI_API_KEY environment variable.
func WithAPIKey(apiKey string) Option {
	return func(j *Judge) {
		j.apiKey = apiKey
	}
}

// WithBaseURL sets the base URL for the OpenAI API.
// Optional, for OpenAI-compatible APIs.
func WithBaseURL(baseURL string) Option {
	return func(j *Judge) {
		j.baseURL = baseURL
	}
}

// WithMaxRetries sets the maximum number of client retries for errors.
// Negative values are treated as 0.
func WithMaxRetries(maxRetries int) Option {
	return func(j *Judge) {
		if maxRetries < 0 {
			maxRetries = 0
		}
		j.maxRetries = maxRetries
	}
}

// WithTimeout sets the per-request timeout. Zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(j *Judge) {
		j.timeout = timeout
	}
}

// WithRequestOptions sets additional options for the OpenAI client requests.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(j *Judge) {
		j.requestOptions = append(j.requestOptions, opts...)
	}
}

// New creates a new OpenAI judge with the given options.
func New(opts ...Option) *Judge {
	j := &Judge{
		model:      DefaultModel,
		maxRetries: DefaultMaxRetries,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(j)
	}

	var clientOpts []option.RequestOption
	if j.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(j.apiKey))
	}
	if j.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(j.baseURL))
	}
	clientOpts = append(clientOpts, option.WithMaxRetries(j.maxRetries))
	if j.timeout > 0 {
		clientOpts = append(clientOpts, option.WithRequestTimeout(j.timeout))
	}

	j.client = openai.NewClient(clientOpts...)
	return j
}

// Model returns the configured judge model name.
func (j *Judge) Model() string {
	return j.model
}

// Complete implements the judge.Judge interface.
func (j *Judge) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	request := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(j.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0),
	}

	requestOpts := make([]option.RequestOption, len(j.requestOptions))
	copy(requestOpts, j.requestOptions)

	completion, err := j.client.Chat.Completions.New(ctx, request, requestOpts...)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return completion.Choices[0].Message.Content, nil
}
