package ports

import (
	"context"
	"time"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// MaintenanceRepository defines persistence operations for maintenance tasks.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	FindByID(ctx context.Context, id string) (*domain.Maintenance, error)
	// UpdateStatus sets the task status; completedDate is recorded when non-nil.
	UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus, completedDate *time.Time) error
	List(ctx context.Context) ([]*domain.Maintenance, error)
}
