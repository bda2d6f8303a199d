package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// ApartmentHandler handles HTTP requests for apartment operations.
type ApartmentHandler struct {
	service ports.ApartmentService
}

func NewApartmentHandler(service ports.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{service: service}
}

type createApartmentRequest struct {
	Number  string `json:"number"   validate:"required"`
	Tower   string `json:"tower"    validate:"required"`
	Floor   int    `json:"floor"    validate:"required,gte=0"`
	OwnerID string `json:"owner_id" validate:"required"`
	Type    string `json:"type"`
	Status  string `json:"status"   validate:"omitempty,oneof=owner_occupied rented airbnb vacant"`
}

type updateApartmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=owner_occupied rented airbnb vacant"`
}

// Create registers a new apartment.
//
// @Summary      Register an apartment
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApartmentRequest  true  "Apartment details"
// @Success      201   {object}  domain.Apartment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/apartments [post]
func (h *ApartmentHandler) Create(c echo.Context) error {
	var req createApartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	apartment, err := h.service.Create(c.Request().Context(), ports.CreateApartmentInput{
		Number:  req.Number,
		Tower:   req.Tower,
		Floor:   req.Floor,
		OwnerID: req.OwnerID,
		Type:    req.Type,
		Status:  domain.ApartmentStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, apartment)
}

// Get returns a single apartment by id.
//
// @Summary      Get an apartment
// @Tags         apartments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Apartment id"
// @Success      200  {object}  domain.Apartment
// @Failure      404  {object}  errorResponse
// @Router       /v1/apartments/{id} [get]
func (h *ApartmentHandler) Get(c echo.Context) error {
	apartment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartment)
}

// List returns every apartment in the complex.
//
// @Summary      List apartments
// @Tags         apartments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Apartment
// @Failure      401  {object}  errorResponse
// @Router       /v1/apartments [get]
func (h *ApartmentHandler) List(c echo.Context) error {
	apartments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartments)
}

// UpdateStatus changes the occupancy status of an apartment.
//
// @Summary      Update apartment status
// @Tags         apartments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                        true  "Apartment id"
// @Param        body  body      updateApartmentStatusRequest  true  "New status"
// @Success      200   {object}  domain.Apartment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/apartments/{id}/status [put]
func (h *ApartmentHandler) UpdateStatus(c echo.Context) error {
	var req updateApartmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	apartment, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ApartmentStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, apartment)
}
