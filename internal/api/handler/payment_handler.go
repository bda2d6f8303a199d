package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for administration payments.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type recordPaymentRequest struct {
	ApartmentID string    `json:"apartment_id" validate:"required"`
	Amount      float64   `json:"amount"       validate:"required,gt=0"`
	DueDate     time.Time `json:"due_date"     validate:"required"`
	Description string    `json:"description"`
}

// Record registers a monthly administration charge against an apartment.
//
// @Summary      Record a payment charge
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Charge details"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.service.Record(c.Request().Context(), ports.RecordPaymentInput{
		ApartmentID: req.ApartmentID,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, payment)
}

// MarkPaid settles a pending or overdue charge.
//
// @Summary      Mark a charge as paid
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/payments/{id}/pay [put]
func (h *PaymentHandler) MarkPaid(c echo.Context) error {
	payment, err := h.service.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// List returns charges scoped to the caller: admins see every apartment,
// owners only their own.
//
// @Summary      List payment charges
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Payment
// @Failure      401  {object}  errorResponse
// @Router       /v1/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	payments, err := h.service.List(c.Request().Context(), ports.ListPaymentsInput{
		Role:   callerRole(c),
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}
