package evaluation

import "context"

type Repository interface {
	Create(ctx context.Context, e *Evaluation) error
	LatestByApplication(ctx context.Context, appID string) (*Evaluation, error)
}
