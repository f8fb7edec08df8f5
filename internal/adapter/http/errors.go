package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/ai"
)

// respondError maps domain errors to HTTP statuses. Every failure body is
// the same shape so the client can surface it verbatim.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrNotFound), errors.Is(err, document.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, document.ErrBusy):
		status = http.StatusConflict
	case errors.Is(err, document.ErrParse):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, ai.ErrUpstream):
		status = http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status = http.StatusGatewayTimeout
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
