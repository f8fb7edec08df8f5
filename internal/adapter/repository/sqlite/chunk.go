package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	docDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

type ChunkRepository struct{ db *gorm.DB }

func NewChunkRepository(db *gorm.DB) *ChunkRepository { return &ChunkRepository{db: db} }

// ReplaceForDocument swaps the document's chunk set in one transaction so
// readers never observe a partial set.
func (r *ChunkRepository) ReplaceForDocument(ctx context.Context, docID string, chunks []docDomain.Chunk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doc_id = ?", docID).Delete(&docDomain.Chunk{}).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		return tx.Create(&chunks).Error
	})
}

func (r *ChunkRepository) ListByDocument(ctx context.Context, docID string) ([]docDomain.Chunk, error) {
	var out []docDomain.Chunk
	res := r.db.WithContext(ctx).
		Where("doc_id = ?", docID).
		Order("seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *ChunkRepository) SaveEmbedding(ctx context.Context, chunkID string, embedding []float32) error {
	res := r.db.WithContext(ctx).
		Model(&docDomain.Chunk{}).
		Where("chunk_id = ?", chunkID).
		Update("embedding", embedding)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("chunk not found: " + chunkID)
	}
	return nil
}

func (r *ChunkRepository) DeleteByDocID(ctx context.Context, docID string) error {
	return r.db.WithContext(ctx).
		Where("doc_id = ?", docID).
		Delete(&docDomain.Chunk{}).Error
}
