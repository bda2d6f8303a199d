package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/api/metrics"
	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

// Dispatch persists a single notification. Called from the dispatcher workers.
func (s *notificationService) Dispatch(ctx context.Context, input ports.NotificationInput) error {
	recipientType := input.RecipientType
	if recipientType == "" {
		recipientType = domain.RecipientAll
	}

	now := time.Now().UTC()
	notification := &domain.Notification{
		Title:         input.Title,
		Message:       input.Message,
		Type:          input.Type,
		RecipientType: recipientType,
		RecipientID:   input.RecipientID,
		ApartmentID:   input.ApartmentID,
		IsRead:        false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Insert(ctx, notification)
	if err != nil {
		return err
	}

	metrics.NotificationsDispatchedTotal.WithLabelValues(string(created.Type), string(created.RecipientType)).Inc()
	s.log.Info().
		Str("notification_id", created.ID).
		Str("type", string(created.Type)).
		Str("recipient_type", string(created.RecipientType)).
		Msg("notification dispatched")

	return nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID, role string) ([]*domain.Notification, error) {
	return s.repo.ListForUser(ctx, userID, role)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}
