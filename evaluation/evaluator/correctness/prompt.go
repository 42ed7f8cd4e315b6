//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package correctness

import "text/template"

var (
	// classificationPrompt is the template fed to the judge model.
	classificationPrompt = `You are an expert grader comparing a generated answer against a gold answer.

Decompose both answers into simple factual statements, then classify every statement into exactly one class:

* TP: a statement in the generated answer that is directly supported by the gold answer.
* FP: a statement in the generated answer that is not supported by the gold answer.
* FN: a statement in the gold answer that is missing from the generated answer.

Treat the gold answer as the only ground truth. Do not reward information the gold answer does not contain, and do not fact-check either answer yourself.

Question: {{.Question}}
Gold answer: {{.GoldAnswer}}
Generated answer: {{.Answer}}

Output one block per statement, exactly in this form:
Statement: [the statement]
Class: [TP|FP|FN]

Do not output anything else.
`
	// classificationPromptTemplate renders the judge prompt with data.
	classificationPromptTemplate = template.Must(template.New("classificationPrompt").Parse(classificationPrompt))
)

// classificationPromptData feeds values into the judge prompt template.
type classificationPromptData struct {
	Question   string // Question is the original question text.
	GoldAnswer string // GoldAnswer is the reference answer treated as ground truth.
	Answer     string // Answer is the generated answer being graded.
}
