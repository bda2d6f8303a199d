package ports

import (
	"context"
	"time"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// RegisterBookingInput carries all data needed to register a short-stay guest.
type RegisterBookingInput struct {
	ApartmentID    string
	GuestName      string
	GuestCedula    string
	NumberOfGuests int
	CheckInDate    time.Time
	CheckOutDate   time.Time
}

// BookingService defines the guest lifecycle use-cases: owners register a
// booking, concierge checks the guest in and out.
type BookingService interface {
	RegisterGuest(ctx context.Context, input RegisterBookingInput) (*domain.Booking, error)
	CheckIn(ctx context.Context, id string) (*domain.Booking, error)
	CheckOut(ctx context.Context, id string) (*domain.Booking, error)
	ListActive(ctx context.Context) ([]*domain.Booking, error)
}
