package appmock

import (
	"context"
	"errors"

	domain "github.com/AhsanAsc/Social-Support-App/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("appmock: method not implemented")

// Repo is a function-backed mock satisfying application.Repository.
// Fill in only the fields a test needs.
type Repo struct {
	CreateFn     func(ctx context.Context, a *domain.Application) error
	GetByAppIDFn func(ctx context.Context, appID string) (*domain.Application, error)
	SaveFn       func(ctx context.Context, a *domain.Application) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAppID(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDFn != nil {
		return m.GetByAppIDFn(ctx, appID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
