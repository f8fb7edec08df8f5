package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Applications: &ApplicationRepository{db: tx},
			Documents:    &DocumentRepository{db: tx},
			Chunks:       &ChunkRepository{db: tx},
			Evaluations:  &EvaluationRepository{db: tx},
		}
		return fn(r)
	})
}
