package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AhsanAsc/Social-Support-App/internal/usecase/rag"
)

type RAGHandler struct{ uc *rag.Usecase }

func NewRAGHandler(uc *rag.Usecase) *RAGHandler { return &RAGHandler{uc: uc} }

func (h *RAGHandler) Reindex(c echo.Context) error {
	n, err := h.uc.Reindex(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"embedded": n})
}

func (h *RAGHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing query param q"})
	}
	k, _ := strconv.Atoi(c.QueryParam("k"))

	hits, err := h.uc.Search(c.Request().Context(), c.Param("id"), q, k)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"results": hits})
}

func (h *RAGHandler) QA(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing query param q"})
	}
	k, _ := strconv.Atoi(c.QueryParam("k"))

	res, err := h.uc.Answer(c.Request().Context(), c.Param("id"), q, k)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
