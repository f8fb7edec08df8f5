package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/pkg/id"
)

type Usecase struct {
	apps application.Repository
	docs document.Repository
}

func NewUsecase(apps application.Repository, docs document.Repository) *Usecase {
	return &Usecase{apps: apps, docs: docs}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", application.ErrInvalid)
	}
	if in.HouseholdSize < 1 {
		return nil, fmt.Errorf("%w: household size must be >= 1", application.ErrInvalid)
	}
	if in.MonthlyIncome < 0 {
		return nil, fmt.Errorf("%w: monthly income must be >= 0", application.ErrInvalid)
	}

	var nationalID *string
	if in.NationalID != nil && strings.TrimSpace(*in.NationalID) != "" {
		v := strings.TrimSpace(*in.NationalID)
		nationalID = &v
	}

	a := &application.Application{
		AppID:           id.NewID32(),
		FullName:        fullName,
		NationalID:      nationalID,
		HouseholdSize:   in.HouseholdSize,
		MonthlyIncome:   in.MonthlyIncome,
		Status:          application.StatusDraft,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, appID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// Status derives the reported state from the document set: evaluated once
// an evaluation ran, docs_pending otherwise. missing_required lists the
// checklist types without a Parsed document; an uploaded-but-unparsed
// document still counts as missing.
func (u *Usecase) Status(ctx context.Context, appID string) (*StatusDTO, error) {
	a, err := u.apps.GetByAppID(ctx, appID)
	if err != nil {
		return nil, err
	}
	docs, err := u.docs.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	parsed := make(map[document.Type]bool, len(docs))
	for _, d := range docs {
		if d.ParseState == document.ParseStateParsed {
			parsed[d.Type] = true
		}
	}

	missing := make([]string, 0, len(document.RequiredTypes()))
	for _, t := range document.RequiredTypes() {
		if !parsed[t] {
			missing = append(missing, string(t))
		}
	}

	status := application.StatusDocsPending
	if a.Status == application.StatusEvaluated {
		status = application.StatusEvaluated
	}
	return &StatusDTO{Status: string(status), MissingRequired: missing}, nil
}

func toDTO(a *application.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ID:            a.AppID,
		FullName:      a.FullName,
		NationalID:    a.NationalID,
		HouseholdSize: a.HouseholdSize,
		MonthlyIncome: a.MonthlyIncome,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}
