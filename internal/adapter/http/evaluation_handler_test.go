package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	evalDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
	"github.com/AhsanAsc/Social-Support-App/internal/testutil/aimock"
	"github.com/AhsanAsc/Social-Support-App/internal/testutil/appmock"
	"github.com/AhsanAsc/Social-Support-App/internal/testutil/docmock"
	"github.com/AhsanAsc/Social-Support-App/internal/testutil/evalmock"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/eligibility"
)

func newEvalHandler(generator *aimock.Generator) *EvaluationHandler {
	apps := &appmock.Repo{
		GetByAppIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return &appDomain.Application{AppID: id, HouseholdSize: 1, MonthlyIncome: 0, Status: appDomain.StatusDraft}, nil
		},
	}
	el := eligibility.NewUsecase(apps, &docmock.Repo{}, &docmock.ChunkRepo{}, &evalmock.Repo{}, eligibility.DefaultPolicy())
	ragUC := newRAGUsecase(&aimock.Embedder{}, generator)
	return NewEvaluationHandler(el, ragUC)
}

func TestEvaluate_OK(t *testing.T) {
	h := newEvalHandler(&aimock.Generator{})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(testAppID)

	if err := h.Evaluate(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Score  float64 `json:"score"`
		Status string  `json:"status"`
		Rules  []struct {
			ID     string `json:"id"`
			Passed bool   `json:"passed"`
		} `json:"rules"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// no documents at all: income rules pass, evidence rules fail
	if out.Status != "manual_review" {
		t.Fatalf("status = %s, want manual_review", out.Status)
	}
	if len(out.Rules) == 0 {
		t.Fatal("rules missing from response")
	}
}

func TestJustify_UsesStoredEvaluation(t *testing.T) {
	apps := &appmock.Repo{
		GetByAppIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return &appDomain.Application{AppID: id, Status: appDomain.StatusEvaluated}, nil
		},
	}
	evals := &evalmock.Repo{
		CreateFn: func(ctx context.Context, e *evalDomain.Evaluation) error {
			t.Fatal("justify must not persist a new evaluation when one exists")
			return nil
		},
		LatestByApplicationFn: func(ctx context.Context, id string) (*evalDomain.Evaluation, error) {
			return &evalDomain.Evaluation{
				EvalID:        "e1",
				ApplicationID: id,
				Score:         0.8,
				Status:        evalDomain.StatusApproved,
				Outcomes:      []evalDomain.RuleOutcome{{RuleID: "income_below_threshold", Passed: true, Weight: 3}},
			}, nil
		},
	}
	el := eligibility.NewUsecase(apps, &docmock.Repo{}, &docmock.ChunkRepo{}, evals, eligibility.DefaultPolicy())
	var prompt string
	ragUC := newRAGUsecase(&aimock.Embedder{}, &aimock.Generator{
		GenerateFn: func(ctx context.Context, p string) (string, error) { prompt = p; return "approved note", nil },
	})
	h := NewEvaluationHandler(el, ragUC)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(testAppID)

	if err := h.Justify(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(prompt, "approved") || !strings.Contains(prompt, "income_below_threshold") {
		t.Fatalf("prompt does not carry the stored evaluation: %q", prompt)
	}
}

func TestJustify_OK(t *testing.T) {
	h := newEvalHandler(&aimock.Generator{
		GenerateFn: func(ctx context.Context, prompt string) (string, error) {
			return "The application needs more evidence.", nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(testAppID)

	if err := h.Justify(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["explanation"] == "" {
		t.Fatal("empty explanation")
	}
}
