package docmock

import (
	"context"
	"errors"

	domain "github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

var (
	_ domain.Repository      = (*Repo)(nil)
	_ domain.ChunkRepository = (*ChunkRepo)(nil)
)

var errUnimplemented = errors.New("docmock: method not implemented")

// Repo is a function-backed mock satisfying document.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, d *domain.Document) error
	SaveFn                    func(ctx context.Context, d *domain.Document) error
	GetByDocIDFn              func(ctx context.Context, docID string) (*domain.Document, error)
	GetByApplicationAndTypeFn func(ctx context.Context, appID string, t domain.Type) (*domain.Document, error)
	ListByApplicationFn       func(ctx context.Context, appID string) ([]domain.Document, error)
	DeleteByDocIDFn           func(ctx context.Context, docID string) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocID(ctx context.Context, docID string) (*domain.Document, error) {
	if m.GetByDocIDFn != nil {
		return m.GetByDocIDFn(ctx, docID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByApplicationAndType(ctx context.Context, appID string, t domain.Type) (*domain.Document, error) {
	if m.GetByApplicationAndTypeFn != nil {
		return m.GetByApplicationAndTypeFn(ctx, appID, t)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByApplication(ctx context.Context, appID string) ([]domain.Document, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, appID)
	}
	return nil, nil
}

func (m *Repo) DeleteByDocID(ctx context.Context, docID string) error {
	if m.DeleteByDocIDFn != nil {
		return m.DeleteByDocIDFn(ctx, docID)
	}
	return nil
}

// ChunkRepo is a function-backed mock satisfying document.ChunkRepository.
type ChunkRepo struct {
	ReplaceForDocumentFn func(ctx context.Context, docID string, chunks []domain.Chunk) error
	ListByDocumentFn     func(ctx context.Context, docID string) ([]domain.Chunk, error)
	SaveEmbeddingFn      func(ctx context.Context, chunkID string, embedding []float32) error
	DeleteByDocIDFn      func(ctx context.Context, docID string) error
}

func (m *ChunkRepo) ReplaceForDocument(ctx context.Context, docID string, chunks []domain.Chunk) error {
	if m.ReplaceForDocumentFn != nil {
		return m.ReplaceForDocumentFn(ctx, docID, chunks)
	}
	return nil
}

func (m *ChunkRepo) ListByDocument(ctx context.Context, docID string) ([]domain.Chunk, error) {
	if m.ListByDocumentFn != nil {
		return m.ListByDocumentFn(ctx, docID)
	}
	return nil, nil
}

func (m *ChunkRepo) SaveEmbedding(ctx context.Context, chunkID string, embedding []float32) error {
	if m.SaveEmbeddingFn != nil {
		return m.SaveEmbeddingFn(ctx, chunkID, embedding)
	}
	return nil
}

func (m *ChunkRepo) DeleteByDocID(ctx context.Context, docID string) error {
	if m.DeleteByDocIDFn != nil {
		return m.DeleteByDocIDFn(ctx, docID)
	}
	return nil
}
