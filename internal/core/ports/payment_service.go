package ports

import (
	"context"
	"time"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// RecordPaymentInput carries all data needed to register a monthly charge.
type RecordPaymentInput struct {
	ApartmentID string
	Amount      float64
	DueDate     time.Time
	Description string
}

// ListPaymentsInput scopes the payment listing to the caller. Owners only see
// charges against their own apartments; admins see everything.
type ListPaymentsInput struct {
	Role   string
	UserID string
}

// PaymentService defines use-case operations for administration payments.
type PaymentService interface {
	Record(ctx context.Context, input RecordPaymentInput) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, input ListPaymentsInput) ([]*domain.Payment, error)
}
