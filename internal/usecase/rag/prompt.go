package rag

import (
	"fmt"
	"strings"

	"github.com/AhsanAsc/Social-Support-App/internal/usecase/eligibility"
)

// buildAnswerPrompt instructs the model to answer only from the supplied
// chunks. Grounding is a prompt-level constraint, not a mechanically
// enforced one; the citation list returned alongside the answer is what
// reviewers verify against.
func buildAnswerPrompt(question string, hits []Hit) string {
	var sb strings.Builder
	sb.WriteString("Answer the question using only the context below. ")
	sb.WriteString("If the context does not contain the answer, say so; do not invent facts.\n\nContext:\n")
	for i, h := range hits {
		if h.Page != nil {
			fmt.Fprintf(&sb, "[%d] (%s, page %d) %s\n", i+1, h.DocType, *h.Page, h.Text)
		} else {
			fmt.Fprintf(&sb, "[%d] (%s) %s\n", i+1, h.DocType, h.Text)
		}
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")
	return sb.String()
}

// buildJustifyPrompt summarizes an evaluation for a human reviewer. It is
// a presentation transform: score and status are stated as computed, the
// model must not second-guess them.
func buildJustifyPrompt(res *eligibility.ResultDTO) string {
	var sb strings.Builder
	sb.WriteString("You are drafting a short note for a social-support case reviewer. ")
	sb.WriteString("Summarize the eligibility check results below in plain language. ")
	sb.WriteString("Do not change the score or the decision; explain what passed, what failed and what the applicant could provide next.\n\n")
	fmt.Fprintf(&sb, "Score: %.2f\nDecision: %s\n\nChecks:\n", res.Score, res.Status)
	for _, r := range res.Rules {
		verdict := "failed"
		if r.Passed {
			verdict = "passed"
		}
		fmt.Fprintf(&sb, "- %s (weight %.0f): %s. %s\n", r.RuleID, r.Weight, verdict, r.Reason)
	}
	sb.WriteString("\nReviewer note:")
	return sb.String()
}
