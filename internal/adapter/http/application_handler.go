package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appuc "github.com/AhsanAsc/Social-Support-App/internal/usecase/application"
)

type ApplicationHandler struct{ uc *appuc.Usecase }

func NewApplicationHandler(uc *appuc.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// field names match the intake client
type createApplicationReq struct {
	FullName      string  `json:"applicant_full_name" validate:"required"`
	NationalID    *string `json:"applicant_national_id"`
	HouseholdSize int     `json:"household_size"       validate:"required,gte=1"`
	MonthlyIncome float64 `json:"monthly_income"       validate:"gte=0"`
}

func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), appuc.CreateInput{
		FullName:      req.FullName,
		NationalID:    req.NationalID,
		HouseholdSize: req.HouseholdSize,
		MonthlyIncome: req.MonthlyIncome,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": dto.ID})
}

type applicationIDParam struct {
	ID string `param:"id" validate:"required,hex32"`
}

func (h *ApplicationHandler) GetStatus(c echo.Context) error {
	var p applicationIDParam
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}
	if err := c.Validate(&p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid application id",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Status(c.Request().Context(), p.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
