package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// DamageRepository defines persistence operations for damage reports.
type DamageRepository interface {
	Create(ctx context.Context, r *domain.DamageReport) (*domain.DamageReport, error)
	FindByID(ctx context.Context, id string) (*domain.DamageReport, error)
	UpdateStatus(ctx context.Context, id string, status domain.DamageStatus) error
	ListByReporter(ctx context.Context, userID string) ([]*domain.DamageReport, error)
}
