package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for short-stay guest bookings.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type registerBookingRequest struct {
	ApartmentID    string    `json:"apartment_id"     validate:"required"`
	GuestName      string    `json:"guest_name"       validate:"required"`
	GuestCedula    string    `json:"guest_cedula"     validate:"required"`
	NumberOfGuests int       `json:"number_of_guests" validate:"required,gt=0"`
	CheckInDate    time.Time `json:"check_in_date"    validate:"required"`
	CheckOutDate   time.Time `json:"check_out_date"   validate:"required,gtfield=CheckInDate"`
}

// Register creates a guest booking against an apartment.
//
// @Summary      Register a guest booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Register(c echo.Context) error {
	var req registerBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.service.RegisterGuest(c.Request().Context(), ports.RegisterBookingInput{
		ApartmentID:    req.ApartmentID,
		GuestName:      req.GuestName,
		GuestCedula:    req.GuestCedula,
		NumberOfGuests: req.NumberOfGuests,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}

// CheckIn marks the guest as inside the complex.
//
// @Summary      Check a guest in
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/bookings/{id}/checkin [put]
func (h *BookingHandler) CheckIn(c echo.Context) error {
	booking, err := h.service.CheckIn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// CheckOut marks the guest as having left the complex.
//
// @Summary      Check a guest out
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/bookings/{id}/checkout [put]
func (h *BookingHandler) CheckOut(c echo.Context) error {
	booking, err := h.service.CheckOut(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// ListActive returns the guests currently staying in the complex.
//
// @Summary      List active guests
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Router       /v1/bookings/active [get]
func (h *BookingHandler) ListActive(c echo.Context) error {
	bookings, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
