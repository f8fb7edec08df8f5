package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	evalDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
)

type EvaluationRepository struct{ db *gorm.DB }

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) Create(ctx context.Context, e *evalDomain.Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EvaluationRepository) LatestByApplication(ctx context.Context, appID string) (*evalDomain.Evaluation, error) {
	var out evalDomain.Evaluation
	res := r.db.WithContext(ctx).
		Where("application_id = ?", appID).
		Order("id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, evalDomain.ErrNotFound
	}
	return &out, res.Error
}
