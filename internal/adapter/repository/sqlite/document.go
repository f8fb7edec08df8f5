package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	docDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *docDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) GetByDocID(ctx context.Context, docID string) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).Where("doc_id = ?", docID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, docDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DocumentRepository) GetByApplicationAndType(ctx context.Context, appID string, t docDomain.Type) (*docDomain.Document, error) {
	var out docDomain.Document
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND doc_type = ?", appID, t).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, docDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DocumentRepository) ListByApplication(ctx context.Context, appID string) ([]docDomain.Document, error) {
	var out []docDomain.Document
	res := r.db.WithContext(ctx).
		Where("application_id = ?", appID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) DeleteByDocID(ctx context.Context, docID string) error {
	return r.db.WithContext(ctx).
		Where("doc_id = ?", docID).
		Delete(&docDomain.Document{}).Error
}
