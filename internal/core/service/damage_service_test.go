package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type stubDamageRepo struct {
	byID map[string]*domain.DamageReport
}

func newStubDamageRepo() *stubDamageRepo {
	return &stubDamageRepo{byID: make(map[string]*domain.DamageReport)}
}

func (r *stubDamageRepo) Create(_ context.Context, report *domain.DamageReport) (*domain.DamageReport, error) {
	clone := *report
	clone.ID = "dmg_" + strconv.Itoa(len(r.byID)+1)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDamageRepo) FindByID(_ context.Context, id string) (*domain.DamageReport, error) {
	if d, ok := r.byID[id]; ok {
		clone := *d
		return &clone, nil
	}
	return nil, domain.ErrDamageReportNotFound
}

func (r *stubDamageRepo) UpdateStatus(_ context.Context, id string, status domain.DamageStatus) error {
	d, ok := r.byID[id]
	if !ok {
		return domain.ErrDamageReportNotFound
	}
	d.Status = status
	return nil
}

func (r *stubDamageRepo) ListByReporter(_ context.Context, userID string) ([]*domain.DamageReport, error) {
	var out []*domain.DamageReport
	for _, d := range r.byID {
		if d.ReportedBy == userID {
			clone := *d
			out = append(out, &clone)
		}
	}
	return out, nil
}

func TestDamageService_FileReport(t *testing.T) {
	repo := newStubDamageRepo()
	notifier := &stubNotifier{}
	svc := NewDamageService(repo, notifier, zerolog.Nop())

	report, err := svc.FileReport(context.Background(), ports.FileDamageReportInput{
		ApartmentID: "apt_1",
		ReportedBy:  "user_1",
		Title:       "Broken window",
		Description: "Living room window cracked",
	})
	if err != nil {
		t.Fatalf("file report: %v", err)
	}
	if report.Status != domain.DamageReported {
		t.Fatalf("expected reported, got %s", report.Status)
	}
	if report.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", report.Priority)
	}

	if len(notifier.sent) != 1 || notifier.sent[0].RecipientType != domain.RecipientStaff {
		t.Fatalf("expected staff notification, got %+v", notifier.sent)
	}
}

func TestDamageService_FileReport_InvalidPriority(t *testing.T) {
	svc := NewDamageService(newStubDamageRepo(), &stubNotifier{}, zerolog.Nop())

	_, err := svc.FileReport(context.Background(), ports.FileDamageReportInput{
		ApartmentID: "apt_1", ReportedBy: "user_1", Title: "x", Description: "y",
		Priority: "catastrophic",
	})
	if !errors.Is(err, domain.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestDamageService_UpdateStatus_NotifiesReporter(t *testing.T) {
	repo := newStubDamageRepo()
	notifier := &stubNotifier{}
	svc := NewDamageService(repo, notifier, zerolog.Nop())

	report, err := svc.FileReport(context.Background(), ports.FileDamageReportInput{
		ApartmentID: "apt_1", ReportedBy: "user_1", Title: "Leak", Description: "Bathroom leak",
	})
	if err != nil {
		t.Fatalf("file report: %v", err)
	}
	notifier.sent = nil

	updated, err := svc.UpdateStatus(context.Background(), report.ID, domain.DamageAcknowledged)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.DamageAcknowledged {
		t.Fatalf("expected acknowledged, got %s", updated.Status)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected reporter notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].RecipientType != domain.RecipientUser || notifier.sent[0].RecipientID != "user_1" {
		t.Fatalf("expected notification addressed to reporter, got %+v", notifier.sent[0])
	}
}

func TestDamageService_UpdateStatus_InvalidTransition(t *testing.T) {
	repo := newStubDamageRepo()
	svc := NewDamageService(repo, &stubNotifier{}, zerolog.Nop())

	report, err := svc.FileReport(context.Background(), ports.FileDamageReportInput{
		ApartmentID: "apt_1", ReportedBy: "user_1", Title: "Leak", Description: "Bathroom leak",
	})
	if err != nil {
		t.Fatalf("file report: %v", err)
	}

	// reported → resolved must pass through acknowledged or in_progress.
	if _, err := svc.UpdateStatus(context.Background(), report.ID, domain.DamageResolved); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDamageService_ListMine(t *testing.T) {
	repo := newStubDamageRepo()
	svc := NewDamageService(repo, &stubNotifier{}, zerolog.Nop())

	_, _ = svc.FileReport(context.Background(), ports.FileDamageReportInput{
		ApartmentID: "apt_1", ReportedBy: "user_1", Title: "Mine", Description: "d",
	})
	_, _ = svc.FileReport(context.Background(), ports.FileDamageReportInput{
		ApartmentID: "apt_2", ReportedBy: "user_2", Title: "Someone else's", Description: "d",
	})

	mine, err := svc.ListMine(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Mine" {
		t.Fatalf("expected only own reports, got %+v", mine)
	}
}
