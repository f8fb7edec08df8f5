package uow

import (
	"context"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
)

type Repos struct {
	Applications application.Repository
	Documents    document.Repository
	Chunks       document.ChunkRepository
	Evaluations  evaluation.Repository
}

// UnitOfWork runs fn with all repositories bound to one transaction, so a
// chunk-set swap and its document's state change commit or roll back
// together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
