package domain

import (
	"errors"
	"time"
)

// ApartmentStatus represents the occupancy state of an apartment.
type ApartmentStatus string

const (
	ApartmentOwnerOccupied ApartmentStatus = "owner_occupied"
	ApartmentRented        ApartmentStatus = "rented"
	ApartmentAirbnb        ApartmentStatus = "airbnb"
	ApartmentVacant        ApartmentStatus = "vacant"
)

var validApartmentStatuses = map[ApartmentStatus]struct{}{
	ApartmentOwnerOccupied: {},
	ApartmentRented:        {},
	ApartmentAirbnb:        {},
	ApartmentVacant:        {},
}

// IsValid reports whether s is a recognised apartment status.
func (s ApartmentStatus) IsValid() bool {
	_, ok := validApartmentStatuses[s]
	return ok
}

var ErrApartmentNotFound = errors.New("apartment not found")
var ErrDuplicateApartment = errors.New("apartment already exists")

// Apartment is a single unit in the complex, identified by number and tower.
type Apartment struct {
	ID        string          `json:"id" bson:"-"`
	Number    string          `json:"number" bson:"number"`
	Tower     string          `json:"tower" bson:"tower"`
	Floor     int             `json:"floor" bson:"floor"`
	OwnerID   string          `json:"owner_id" bson:"owner_id"`
	Status    ApartmentStatus `json:"status" bson:"status"`
	Type      string          `json:"type" bson:"type"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

// IsAvailableForRent reports whether the unit can take a new tenant.
func (a *Apartment) IsAvailableForRent() bool {
	return a.Status == ApartmentVacant
}
