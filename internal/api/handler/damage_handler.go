package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// DamageHandler handles HTTP requests for damage reports.
type DamageHandler struct {
	service ports.DamageService
}

func NewDamageHandler(service ports.DamageService) *DamageHandler {
	return &DamageHandler{service: service}
}

type fileDamageReportRequest struct {
	ApartmentID string   `json:"apartment_id" validate:"required"`
	Title       string   `json:"title"        validate:"required"`
	Description string   `json:"description"  validate:"required"`
	Priority    string   `json:"priority"     validate:"omitempty,oneof=low medium high urgent"`
	Images      []string `json:"images"`
}

type updateDamageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reported acknowledged in_progress resolved"`
}

// File records a new damage report for the authenticated resident.
//
// @Summary      File a damage report
// @Tags         damages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fileDamageReportRequest  true  "Report details"
// @Success      201   {object}  domain.DamageReport
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/damage-reports [post]
func (h *DamageHandler) File(c echo.Context) error {
	var req fileDamageReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	report, err := h.service.FileReport(c.Request().Context(), ports.FileDamageReportInput{
		ApartmentID: req.ApartmentID,
		ReportedBy:  userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.DamagePriority(req.Priority),
		Images:      req.Images,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, report)
}

// UpdateStatus advances a damage report through its handling lifecycle.
//
// @Summary      Update damage report status
// @Tags         damages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Report id"
// @Param        body  body      updateDamageStatusRequest  true  "New status"
// @Success      200   {object}  domain.DamageReport
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/damage-reports/{id}/status [put]
func (h *DamageHandler) UpdateStatus(c echo.Context) error {
	var req updateDamageStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.DamageStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// ListMine returns the reports filed by the authenticated user.
//
// @Summary      List own damage reports
// @Tags         damages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.DamageReport
// @Failure      401  {object}  errorResponse
// @Router       /v1/damage-reports/my [get]
func (h *DamageHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	reports, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reports)
}
