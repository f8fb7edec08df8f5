package evalmock

import (
	"context"

	domain "github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying evaluation.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, e *domain.Evaluation) error
	LatestByApplicationFn func(ctx context.Context, appID string) (*domain.Evaluation, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Evaluation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) LatestByApplication(ctx context.Context, appID string) (*domain.Evaluation, error) {
	if m.LatestByApplicationFn != nil {
		return m.LatestByApplicationFn(ctx, appID)
	}
	return nil, domain.ErrNotFound
}
