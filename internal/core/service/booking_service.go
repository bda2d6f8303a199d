package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type BookingService struct {
	repo       ports.BookingRepository
	apartments ports.ApartmentRepository
	notifier   ports.Notifier
	log        zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, apartments ports.ApartmentRepository, notifier ports.Notifier, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, apartments: apartments, notifier: notifier, log: log}
}

// RegisterGuest records a short-stay booking and notifies the apartment owner
// and the concierge staff.
func (s *BookingService) RegisterGuest(ctx context.Context, input ports.RegisterBookingInput) (*domain.Booking, error) {
	apartment, err := s.apartments.FindByID(ctx, input.ApartmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		Reference:      generateReference(),
		ApartmentID:    apartment.ID,
		GuestName:      input.GuestName,
		GuestCedula:    input.GuestCedula,
		NumberOfGuests: input.NumberOfGuests,
		CheckInDate:    input.CheckInDate,
		CheckOutDate:   input.CheckOutDate,
		Status:         domain.BookingPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.log.Error().Err(err).Str("apartment_id", apartment.ID).Msg("failed to create booking")
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		Title:         "New guest booking",
		Message:       fmt.Sprintf("Guest %s registered for apartment %s-%s (%s)", created.GuestName, apartment.Number, apartment.Tower, created.Reference),
		Type:          domain.NotifBookingCheckin,
		RecipientType: domain.RecipientUser,
		RecipientID:   apartment.OwnerID,
		ApartmentID:   apartment.ID,
	})
	s.notifier.Enqueue(ports.NotificationInput{
		Title:         "Guest entry expected",
		Message:       fmt.Sprintf("Booking %s: %d guest(s) expected at apartment %s-%s", created.Reference, created.NumberOfGuests, apartment.Number, apartment.Tower),
		Type:          domain.NotifBookingCheckin,
		RecipientType: domain.RecipientStaff,
		ApartmentID:   apartment.ID,
	})

	s.log.Info().Str("reference", created.Reference).Str("apartment_id", apartment.ID).Msg("booking registered")
	return created, nil
}

// CheckIn marks the guest as inside the complex. Performed by concierge.
func (s *BookingService) CheckIn(ctx context.Context, id string) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingCheckedIn, "guest checked in")
}

// CheckOut marks the guest as having left.
func (s *BookingService) CheckOut(ctx context.Context, id string) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingCheckedOut, "guest checked out")
}

func (s *BookingService) ListActive(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.ListActive(ctx, time.Now().UTC())
}

func (s *BookingService) transition(ctx context.Context, id string, next domain.BookingStatus, event string) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, booking.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, booking.ID, next); err != nil {
		return nil, err
	}

	booking.Status = next
	booking.UpdatedAt = time.Now().UTC()

	if apartment, err := s.apartments.FindByID(ctx, booking.ApartmentID); err == nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Title:         "Booking update",
			Message:       fmt.Sprintf("Booking %s: %s", booking.Reference, event),
			Type:          domain.NotifBookingCheckin,
			RecipientType: domain.RecipientUser,
			RecipientID:   apartment.OwnerID,
			ApartmentID:   apartment.ID,
		})
	}

	s.log.Info().Str("reference", booking.Reference).Str("status", string(next)).Msg(event)
	return booking, nil
}

// generateReference returns a booking reference in the format BK-XXXXXXXX.
func generateReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("BK-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BK-%08X", b)
}
