package eligibility

import (
	"context"
	"time"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
	"github.com/AhsanAsc/Social-Support-App/pkg/id"
)

type Usecase struct {
	apps   application.Repository
	docs   document.Repository
	chunks document.ChunkRepository
	evals  evaluation.Repository
	policy Policy
	rules  []Rule
}

func NewUsecase(apps application.Repository, docs document.Repository, chunks document.ChunkRepository, evals evaluation.Repository, policy Policy) *Usecase {
	return &Usecase{
		apps:   apps,
		docs:   docs,
		chunks: chunks,
		evals:  evals,
		policy: policy,
		rules:  Rules(policy),
	}
}

type ResultDTO struct {
	Score  float64                  `json:"score"`
	Status evaluation.Status        `json:"status"`
	Rules  []evaluation.RuleOutcome `json:"rules"`
}

// Evaluate recomputes the result from the current snapshot; prior
// evaluations are never merged in. Missing documents degrade the score,
// they do not error.
func (u *Usecase) Evaluate(ctx context.Context, appID string) (*ResultDTO, error) {
	app, err := u.apps.GetByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	docs, err := u.docs.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	var bankChunks []document.Chunk
	for _, d := range docs {
		if d.Type == document.TypeBankStatement && d.ParseState == document.ParseStateParsed {
			bankChunks, err = u.chunks.ListByDocument(ctx, d.DocID)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	facts := BuildFacts(app, docs, bankChunks)

	outcomes := make([]evaluation.RuleOutcome, 0, len(u.rules))
	var passedWeight float64
	for _, r := range u.rules {
		passed, reason := r.Evaluate(facts)
		if passed {
			passedWeight += r.Weight
		}
		outcomes = append(outcomes, evaluation.RuleOutcome{
			RuleID: r.ID,
			Passed: passed,
			Reason: reason,
			Weight: r.Weight,
		})
	}

	score := 0.0
	if total := TotalWeight(u.rules); total > 0 {
		score = passedWeight / total
	}

	status := evaluation.StatusManualReview
	switch {
	case score >= u.policy.ApproveAt:
		status = evaluation.StatusApproved
	case score < u.policy.RejectAt:
		status = evaluation.StatusRejected
	}

	if err := u.evals.Create(ctx, &evaluation.Evaluation{
		EvalID:        id.NewID32(),
		ApplicationID: appID,
		Score:         score,
		Status:        status,
		Outcomes:      outcomes,
	}); err != nil {
		return nil, err
	}

	if app.Status != application.StatusEvaluated {
		app.Status = application.StatusEvaluated
		app.StatusUpdatedAt = time.Now().UTC()
		if err := u.apps.Save(ctx, app); err != nil {
			return nil, err
		}
	}

	return &ResultDTO{Score: score, Status: status, Rules: outcomes}, nil
}

// Latest returns the most recent stored evaluation without recomputing.
// evaluation.ErrNotFound when the application was never evaluated.
func (u *Usecase) Latest(ctx context.Context, appID string) (*ResultDTO, error) {
	if _, err := u.apps.GetByAppID(ctx, appID); err != nil {
		return nil, err
	}
	e, err := u.evals.LatestByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	return &ResultDTO{Score: e.Score, Status: e.Status, Rules: e.Outcomes}, nil
}
