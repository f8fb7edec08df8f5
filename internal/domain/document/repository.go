package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	Save(ctx context.Context, d *Document) error
	GetByDocID(ctx context.Context, docID string) (*Document, error)
	GetByApplicationAndType(ctx context.Context, appID string, t Type) (*Document, error)
	// ListByApplication returns documents in creation order.
	ListByApplication(ctx context.Context, appID string) ([]Document, error)
	DeleteByDocID(ctx context.Context, docID string) error
}

type ChunkRepository interface {
	// ReplaceForDocument atomically swaps the chunk set of a document.
	ReplaceForDocument(ctx context.Context, docID string, chunks []Chunk) error
	// ListByDocument returns chunks ordered by sequence.
	ListByDocument(ctx context.Context, docID string) ([]Chunk, error)
	SaveEmbedding(ctx context.Context, chunkID string, embedding []float32) error
	DeleteByDocID(ctx context.Context, docID string) error
}
