package aimock

import (
	"context"
	"errors"

	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/ai"
)

var (
	_ ai.Extractor = (*Extractor)(nil)
	_ ai.Embedder  = (*Embedder)(nil)
	_ ai.Generator = (*Generator)(nil)
)

var errUnimplemented = errors.New("aimock: method not implemented")

// Extractor is a function-backed stand-in for the text-extraction
// collaborator.
type Extractor struct {
	ExtractFn func(ctx context.Context, data []byte, contentType string) ([]ai.Page, error)
}

func (m *Extractor) Extract(ctx context.Context, data []byte, contentType string) ([]ai.Page, error) {
	if m.ExtractFn != nil {
		return m.ExtractFn(ctx, data, contentType)
	}
	return nil, errUnimplemented
}

// Embedder is a function-backed stand-in for the embedding collaborator.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (m *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedFn != nil {
		return m.EmbedFn(ctx, text)
	}
	return nil, errUnimplemented
}

// Generator is a function-backed stand-in for the generation collaborator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (m *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return "", errUnimplemented
}
