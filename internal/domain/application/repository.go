package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByAppID(ctx context.Context, appID string) (*Application, error)
	Save(ctx context.Context, a *Application) error
}
