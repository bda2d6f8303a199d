package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type stubNotificationService struct {
	markReadFn func(ctx context.Context, id, userID string) error
}

func (s *stubNotificationService) Dispatch(_ context.Context, _ ports.NotificationInput) error {
	return nil
}

func (s *stubNotificationService) ListForUser(_ context.Context, _, _ string) ([]*domain.Notification, error) {
	return []*domain.Notification{}, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.markReadFn(ctx, id, userID)
}

type recordingNotifier struct {
	sent []ports.NotificationInput
}

func (n *recordingNotifier) Enqueue(input ports.NotificationInput) {
	n.sent = append(n.sent, input)
}

func TestNotificationHandler_Send_Broadcast(t *testing.T) {
	notifier := &recordingNotifier{}
	h := NewNotificationHandler(&stubNotificationService{}, notifier)

	c, rec := newTestContext(t, http.MethodPost, "/v1/notifications",
		`{"title":"Water cut","message":"Tower A, 2pm to 4pm","recipient_type":"all"}`)

	if err := h.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one enqueued notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].RecipientType != domain.RecipientAll {
		t.Fatalf("unexpected audience: %s", notifier.sent[0].RecipientType)
	}
	if notifier.sent[0].Type != domain.NotifGeneral {
		t.Fatalf("expected default type general, got %s", notifier.sent[0].Type)
	}
}

func TestNotificationHandler_Send_DirectRequiresRecipient(t *testing.T) {
	notifier := &recordingNotifier{}
	h := NewNotificationHandler(&stubNotificationService{}, notifier)

	c, _ := newTestContext(t, http.MethodPost, "/v1/notifications",
		`{"title":"Hi","message":"personal note","recipient_type":"user"}`)

	err := h.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when recipient_id is missing, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("nothing should be enqueued on validation failure")
	}
}

func TestNotificationHandler_MarkRead_ScopedToCaller(t *testing.T) {
	svc := &stubNotificationService{
		markReadFn: func(ctx context.Context, id, userID string) error {
			if id != "notif_1" || userID != "user_1" {
				t.Fatalf("unexpected args: %s %s", id, userID)
			}
			return nil
		},
	}
	h := NewNotificationHandler(svc, &recordingNotifier{})

	c, rec := newTestContext(t, http.MethodPut, "/v1/notifications/notif_1/read", "")
	c.SetParamNames("id")
	c.SetParamValues("notif_1")
	c.Set("user_id", "user_1")

	if err := h.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNotificationHandler_MarkRead_NotOwn(t *testing.T) {
	svc := &stubNotificationService{
		markReadFn: func(ctx context.Context, id, userID string) error {
			return domain.ErrNotificationNotFound
		},
	}
	h := NewNotificationHandler(svc, &recordingNotifier{})

	c, _ := newTestContext(t, http.MethodPut, "/v1/notifications/notif_9/read", "")
	c.SetParamNames("id")
	c.SetParamValues("notif_9")
	c.Set("user_id", "user_1")

	if err := h.MarkRead(c); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound to propagate, got %v", err)
	}
}
