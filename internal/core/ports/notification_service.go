package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// NotificationInput is the DTO handed to the dispatcher by business services.
type NotificationInput struct {
	Title         string
	Message       string
	Type          domain.NotificationType
	RecipientType domain.RecipientType
	// RecipientID is set only when RecipientType is RecipientUser.
	RecipientID string
	ApartmentID string
}

// Notifier is the async fan-out port business services publish through.
// Implementations must not block the caller beyond channel buffering.
type Notifier interface {
	Enqueue(input NotificationInput)
}

// NotificationService persists and serves notifications.
type NotificationService interface {
	// Dispatch persists a single notification; called by the dispatcher workers.
	Dispatch(ctx context.Context, input NotificationInput) error
	ListForUser(ctx context.Context, userID, role string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}
