package ports

import (
	"context"
	"time"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// ScheduleMaintenanceInput carries all data needed to schedule a task.
type ScheduleMaintenanceInput struct {
	Title         string
	Description   string
	Area          string
	Priority      string
	ScheduledDate time.Time
}

// MaintenanceService defines use-case operations for common-area maintenance.
type MaintenanceService interface {
	Schedule(ctx context.Context, input ScheduleMaintenanceInput) (*domain.Maintenance, error)
	UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus) (*domain.Maintenance, error)
	List(ctx context.Context) ([]*domain.Maintenance, error)
}
