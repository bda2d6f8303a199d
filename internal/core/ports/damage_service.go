package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// FileDamageReportInput carries all data needed to file a report.
// ReportedBy comes from the authenticated claims, never the request body.
type FileDamageReportInput struct {
	ApartmentID string
	ReportedBy  string
	Title       string
	Description string
	Priority    domain.DamagePriority
	Images      []string
}

// DamageService defines use-case operations for damage reports.
type DamageService interface {
	FileReport(ctx context.Context, input FileDamageReportInput) (*domain.DamageReport, error)
	UpdateStatus(ctx context.Context, id string, status domain.DamageStatus) (*domain.DamageReport, error)
	ListMine(ctx context.Context, userID string) ([]*domain.DamageReport, error)
}
