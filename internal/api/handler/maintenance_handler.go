package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// MaintenanceHandler handles HTTP requests for common-area maintenance.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

type scheduleMaintenanceRequest struct {
	Title         string    `json:"title"          validate:"required"`
	Description   string    `json:"description"    validate:"required"`
	Area          string    `json:"area"           validate:"required,oneof=pool gym elevator common_area gardens"`
	Priority      string    `json:"priority"       validate:"omitempty,oneof=low medium high urgent"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
}

type updateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

// Schedule creates a maintenance task and notifies all residents.
//
// @Summary      Schedule maintenance
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scheduleMaintenanceRequest  true  "Task details"
// @Success      201   {object}  domain.Maintenance
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/maintenance [post]
func (h *MaintenanceHandler) Schedule(c echo.Context) error {
	var req scheduleMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Schedule(c.Request().Context(), ports.ScheduleMaintenanceInput{
		Title:         req.Title,
		Description:   req.Description,
		Area:          req.Area,
		Priority:      req.Priority,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateStatus advances a maintenance task through its lifecycle.
//
// @Summary      Update maintenance status
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Task id"
// @Param        body  body      updateMaintenanceStatusRequest  true  "New status"
// @Success      200   {object}  domain.Maintenance
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/maintenance/{id}/status [put]
func (h *MaintenanceHandler) UpdateStatus(c echo.Context) error {
	var req updateMaintenanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.MaintenanceStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// List returns all maintenance tasks.
//
// @Summary      List maintenance tasks
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Maintenance
// @Failure      401  {object}  errorResponse
// @Router       /v1/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}
