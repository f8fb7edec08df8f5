package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/ingest"
)

type DocumentHandler struct{ uc *ingest.Usecase }

func NewDocumentHandler(uc *ingest.Usecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// UploadDocument accepts multipart form data: a "file" part plus a
// "doc_type" field, as the intake client sends it.
func (h *DocumentHandler) UploadDocument(c echo.Context) error {
	appID := c.Param("id")
	docType := c.FormValue("doc_type")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file part"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file part"})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file part"})
	}

	dto, err := h.uc.Upload(c.Request().Context(), appID, ingest.UploadInput{
		DocType:     document.Type(docType),
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"document_id": dto.ID})
}

func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	docs, err := h.uc.ListDocuments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": docs})
}

func (h *DocumentHandler) ParseDocument(c echo.Context) error {
	n, err := h.uc.Parse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"chunks": n})
}

func (h *DocumentHandler) ParseAll(c echo.Context) error {
	res, err := h.uc.ParseAll(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
