package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type MaintenanceService struct {
	repo     ports.MaintenanceRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewMaintenanceService(repo ports.MaintenanceRepository, notifier ports.Notifier, log zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, notifier: notifier, log: log}
}

// Schedule registers a maintenance task and broadcasts it to all residents.
func (s *MaintenanceService) Schedule(ctx context.Context, input ports.ScheduleMaintenanceInput) (*domain.Maintenance, error) {
	scheduled := input.ScheduledDate
	if scheduled.IsZero() {
		scheduled = time.Now().UTC()
	}

	now := time.Now().UTC()
	task := &domain.Maintenance{
		Title:         input.Title,
		Description:   input.Description,
		Area:          input.Area,
		Priority:      input.Priority,
		Status:        domain.MaintenancePending,
		ScheduledDate: scheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("area", input.Area).Msg("failed to schedule maintenance")
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		Title:         "Scheduled maintenance",
		Message:       fmt.Sprintf("%s (%s) scheduled for %s", created.Title, created.Area, created.ScheduledDate.Format("2006-01-02")),
		Type:          domain.NotifMaintenance,
		RecipientType: domain.RecipientAll,
	})

	s.log.Info().Str("maintenance_id", created.ID).Str("area", created.Area).Msg("maintenance scheduled")
	return created, nil
}

func (s *MaintenanceService) UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus) (*domain.Maintenance, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !task.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, task.Status, status)
	}

	var completed *time.Time
	if status == domain.MaintenanceCompleted {
		t := time.Now().UTC()
		completed = &t
	}

	if err := s.repo.UpdateStatus(ctx, task.ID, status, completed); err != nil {
		return nil, err
	}

	task.Status = status
	task.CompletedDate = completed
	task.UpdatedAt = time.Now().UTC()

	s.log.Info().Str("maintenance_id", task.ID).Str("status", string(status)).Msg("maintenance status updated")
	return task, nil
}

func (s *MaintenanceService) List(ctx context.Context) ([]*domain.Maintenance, error) {
	return s.repo.List(ctx)
}
