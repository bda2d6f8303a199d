package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type DamageService struct {
	repo     ports.DamageRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewDamageService(repo ports.DamageRepository, notifier ports.Notifier, log zerolog.Logger) *DamageService {
	return &DamageService{repo: repo, notifier: notifier, log: log}
}

// FileReport records a damage report and alerts the administration staff.
func (s *DamageService) FileReport(ctx context.Context, input ports.FileDamageReportInput) (*domain.DamageReport, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, input.Priority)
	}

	now := time.Now().UTC()
	report := &domain.DamageReport{
		ApartmentID: input.ApartmentID,
		ReportedBy:  input.ReportedBy,
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Status:      domain.DamageReported,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.log.Error().Err(err).Str("apartment_id", input.ApartmentID).Msg("failed to file damage report")
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		Title:         "Damage reported",
		Message:       fmt.Sprintf("%s (priority %s)", created.Title, created.Priority),
		Type:          domain.NotifDamageReport,
		RecipientType: domain.RecipientStaff,
		ApartmentID:   created.ApartmentID,
	})

	s.log.Info().Str("report_id", created.ID).Str("priority", string(created.Priority)).Msg("damage report filed")
	return created, nil
}

func (s *DamageService) UpdateStatus(ctx context.Context, id string, status domain.DamageStatus) (*domain.DamageReport, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !report.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, report.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, report.ID, status); err != nil {
		return nil, err
	}

	report.Status = status
	report.UpdatedAt = time.Now().UTC()

	// Keep the reporter informed of progress on their own report.
	s.notifier.Enqueue(ports.NotificationInput{
		Title:         "Damage report update",
		Message:       fmt.Sprintf("%s is now %s", report.Title, status),
		Type:          domain.NotifDamageReport,
		RecipientType: domain.RecipientUser,
		RecipientID:   report.ReportedBy,
		ApartmentID:   report.ApartmentID,
	})

	s.log.Info().Str("report_id", report.ID).Str("status", string(status)).Msg("damage report status updated")
	return report, nil
}

func (s *DamageService) ListMine(ctx context.Context, userID string) ([]*domain.DamageReport, error) {
	return s.repo.ListByReporter(ctx, userID)
}
