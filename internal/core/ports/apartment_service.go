package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// CreateApartmentInput carries all data needed to register an apartment.
type CreateApartmentInput struct {
	Number  string
	Tower   string
	Floor   int
	OwnerID string
	Type    string
	Status  domain.ApartmentStatus
}

// ApartmentService defines use-case operations for apartments.
type ApartmentService interface {
	Create(ctx context.Context, input CreateApartmentInput) (*domain.Apartment, error)
	Get(ctx context.Context, id string) (*domain.Apartment, error)
	List(ctx context.Context) ([]*domain.Apartment, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApartmentStatus) (*domain.Apartment, error)
}
