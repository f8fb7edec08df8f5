// Package ai holds the external collaborators of the pipeline: text
// extraction, embedding and generation. Each sits behind a narrow
// capability interface so the core stays testable with deterministic
// stand-ins.
package ai

import (
	"context"
	"errors"
)

// ErrUpstream wraps any collaborator failure. Callers treat it as
// retryable; it never corrupts local state.
var ErrUpstream = errors.New("upstream service error")

// Page is one page worth of extracted text. Page numbers are 1-based;
// zero means the source format has no pagination.
type Page struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

type Extractor interface {
	Extract(ctx context.Context, data []byte, contentType string) ([]Page, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
