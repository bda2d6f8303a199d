package ports

import (
	"context"
	"time"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// PaymentRepository defines persistence operations for administration payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	// UpdateStatus sets the payment status; paymentDate is recorded when non-nil.
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentDate *time.Time) error
	// List returns payments for the given apartments. An empty slice means no
	// scoping (admin view over all apartments).
	List(ctx context.Context, apartmentIDs []string) ([]*domain.Payment, error)
}
