package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a short-stay guest booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn: {BookingCheckedOut},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking registers a short-stay guest in an apartment, from registration
// through concierge check-in and check-out.
type Booking struct {
	ID             string        `json:"id" bson:"-"`
	Reference      string        `json:"reference" bson:"reference"`
	ApartmentID    string        `json:"apartment_id" bson:"apartment_id"`
	GuestName      string        `json:"guest_name" bson:"guest_name"`
	GuestCedula    string        `json:"guest_cedula" bson:"guest_cedula"`
	NumberOfGuests int           `json:"number_of_guests" bson:"number_of_guests"`
	CheckInDate    time.Time     `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate   time.Time     `json:"check_out_date" bson:"check_out_date"`
	Status         BookingStatus `json:"status" bson:"status"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updated_at"`
}

// IsCurrentlyStaying reports whether the guest is inside the complex right now.
func (b *Booking) IsCurrentlyStaying(now time.Time) bool {
	return b.Status == BookingCheckedIn &&
		!b.CheckInDate.After(now) &&
		b.CheckOutDate.After(now)
}
