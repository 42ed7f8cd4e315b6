//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package coverage

import "text/template"

var (
	// coveragePrompt is the template fed to the judge model.
	coveragePrompt = `You are an expert grader checking how completely a generated answer covers a gold answer.

First extract the distinct key points of the gold answer: the facts, entities, and conclusions a complete answer must mention. Then decide for each key point whether the generated answer covers it. A paraphrase counts as covered; a contradiction or omission does not.

Question: {{.Question}}
Gold answer: {{.GoldAnswer}}
Generated answer: {{.Answer}}

Output one block per key point, exactly in this form:
Point: [the key point]
Covered: [yes|no]

Do not output anything else.
`
	// coveragePromptTemplate renders the judge prompt with data.
	coveragePromptTemplate = template.Must(template.New("coveragePrompt").Parse(coveragePrompt))
)

// coveragePromptData feeds values into the judge prompt template.
type coveragePromptData struct {
	Question   string // Question is the original question text.
	GoldAnswer string // GoldAnswer is the reference answer the key points come from.
	Answer     string // Answer is the generated answer being graded.
}
