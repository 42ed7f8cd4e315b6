//
// GraphRAG-Bench is pleased to support the open source community by making GraphRAG-Benchmark available.
//
// Copyright (C) 2025 GraphRAG-Bench.  All rights reserved.
//
// GraphRAG-Benchmark is licensed under the Apache License Version 2.0.
//
//

package faithfulness

import "text/template"

// verdictPrompt asks the judge to check each answer statement against the
// retrieved context passages. The fixed output form keeps the response
// machine-parseable.
const verdictPrompt = `You are verifying whether the statements of a generated answer are grounded in the retrieved context passages.

Question:
{{.Question}}

Context passages:
{{.Contexts}}

Statements from the generated answer:
{{.Statements}}

For every numbered statement, decide whether it can be directly inferred from the context passages alone. Use only the context passages; do not rely on outside knowledge. A statement that contradicts the passages or adds information they do not contain is not grounded.

Output one block per statement, exactly in this form:
Statement: [the statement]
Verdict: [yes|no]

Do not output anything else.`

// verdictPromptTemplate is the parsed faithfulness verdict prompt template.
var verdictPromptTemplate = template.Must(template.New("faithfulness_verdict").Parse(verdictPrompt))

// verdictPromptData is the data passed to the faithfulness verdict prompt
// template. Contexts and Statements are pre-rendered numbered lists.
type verdictPromptData struct {
	// Question is the benchmark question.
	Question string
	// Contexts is the numbered list of retrieved context passages.
	Contexts string
	// Statements is the numbered list of answer statements to verify.
	Statements string
}
