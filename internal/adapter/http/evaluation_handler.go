package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/eligibility"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/rag"
)

type EvaluationHandler struct {
	eligibility *eligibility.Usecase
	rag         *rag.Usecase
}

func NewEvaluationHandler(el *eligibility.Usecase, r *rag.Usecase) *EvaluationHandler {
	return &EvaluationHandler{eligibility: el, rag: r}
}

func (h *EvaluationHandler) Evaluate(c echo.Context) error {
	res, err := h.eligibility.Evaluate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Justify renders the latest stored evaluation as a reviewer narrative,
// running a first evaluation when none exists yet.
func (h *EvaluationHandler) Justify(c echo.Context) error {
	ctx := c.Request().Context()
	res, err := h.eligibility.Latest(ctx, c.Param("id"))
	if errors.Is(err, evaluation.ErrNotFound) {
		res, err = h.eligibility.Evaluate(ctx, c.Param("id"))
	}
	if err != nil {
		return respondError(c, err)
	}
	text, err := h.rag.Justify(ctx, res)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"explanation": text})
}
