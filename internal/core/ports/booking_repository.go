package ports

import (
	"context"
	"time"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// BookingRepository defines persistence operations for guest bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	// ListActive returns bookings whose guests are inside the complex at the
	// given instant (checked in, stay window covers now).
	ListActive(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
