package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// NotificationHandler handles HTTP requests for notifications.
type NotificationHandler struct {
	service  ports.NotificationService
	notifier ports.Notifier
}

func NewNotificationHandler(service ports.NotificationService, notifier ports.Notifier) *NotificationHandler {
	return &NotificationHandler{service: service, notifier: notifier}
}

type sendNotificationRequest struct {
	Title         string `json:"title"          validate:"required"`
	Message       string `json:"message"        validate:"required"`
	Type          string `json:"type"           validate:"omitempty,oneof=general maintenance payment booking_checkin damage_report"`
	RecipientType string `json:"recipient_type" validate:"required,oneof=all owners tenants staff user"`
	RecipientID   string `json:"recipient_id"   validate:"required_if=RecipientType user"`
	ApartmentID   string `json:"apartment_id"`
}

// Send enqueues an announcement for async delivery and returns 202.
//
// @Summary      Send a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendNotificationRequest  true  "Notification details"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/notifications [post]
func (h *NotificationHandler) Send(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	notifType := domain.NotificationType(req.Type)
	if req.Type == "" {
		notifType = domain.NotifGeneral
	}

	h.notifier.Enqueue(ports.NotificationInput{
		Title:         req.Title,
		Message:       req.Message,
		Type:          notifType,
		RecipientType: domain.RecipientType(req.RecipientType),
		RecipientID:   req.RecipientID,
		ApartmentID:   req.ApartmentID,
	})

	return c.JSON(http.StatusAccepted, map[string]string{"message": "notification accepted"})
}

// List returns the authenticated user's notifications, direct and broadcast.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.ListForUser(c.Request().Context(), userID, callerRole(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notifications)
}

// MarkRead flags a direct notification as read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /v1/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "notification marked as read"})
}
