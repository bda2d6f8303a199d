package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// ApartmentRepository defines persistence operations for apartments.
type ApartmentRepository interface {
	Create(ctx context.Context, a *domain.Apartment) (*domain.Apartment, error)
	FindByID(ctx context.Context, id string) (*domain.Apartment, error)
	// FindByOwner returns every apartment registered to the given owner.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Apartment, error)
	List(ctx context.Context) ([]*domain.Apartment, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApartmentStatus) error
}
