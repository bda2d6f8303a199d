package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	// ListForUser returns direct notifications for the user plus broadcasts
	// whose audience covers the user's role.
	ListForUser(ctx context.Context, userID, role string) ([]*domain.Notification, error)
	// MarkRead flags a direct notification as read. Fails with
	// domain.ErrNotificationNotFound when the row does not belong to userID.
	MarkRead(ctx context.Context, id, userID string) error
}
