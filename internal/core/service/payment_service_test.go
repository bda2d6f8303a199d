package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type stubPaymentRepo struct {
	byID map[string]*domain.Payment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{byID: make(map[string]*domain.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	clone := *p
	clone.ID = "pay_" + strconv.Itoa(len(r.byID)+1)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	if p, ok := r.byID[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *stubPaymentRepo) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus, paymentDate *time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	p.Status = status
	p.PaymentDate = paymentDate
	return nil
}

func (r *stubPaymentRepo) List(_ context.Context, apartmentIDs []string) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range r.byID {
		if len(apartmentIDs) == 0 {
			clone := *p
			out = append(out, &clone)
			continue
		}
		for _, id := range apartmentIDs {
			if p.ApartmentID == id {
				clone := *p
				out = append(out, &clone)
				break
			}
		}
	}
	return out, nil
}

func newPaymentSvc(payments *stubPaymentRepo, apartments *stubApartmentRepo, notifier *stubNotifier) *PaymentService {
	return NewPaymentService(payments, apartments, notifier, zerolog.Nop())
}

func TestPaymentService_Record_NotifiesOwner(t *testing.T) {
	apartments := newStubApartmentRepo()
	seededApartment(apartments)
	payments := newStubPaymentRepo()
	notifier := &stubNotifier{}
	svc := newPaymentSvc(payments, apartments, notifier)

	payment, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		ApartmentID: "apt_1",
		Amount:      250.50,
		DueDate:     time.Now().Add(30 * 24 * time.Hour),
		Description: "Monthly administration fee",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Fatalf("expected pending, got %s", payment.Status)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected owner notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].RecipientID != "owner_1" || notifier.sent[0].Type != domain.NotifPayment {
		t.Fatalf("unexpected notification: %+v", notifier.sent[0])
	}
}

func TestPaymentService_Record_UnknownApartment(t *testing.T) {
	svc := newPaymentSvc(newStubPaymentRepo(), newStubApartmentRepo(), &stubNotifier{})

	_, err := svc.Record(context.Background(), ports.RecordPaymentInput{ApartmentID: "missing", Amount: 1})
	if !errors.Is(err, domain.ErrApartmentNotFound) {
		t.Fatalf("expected ErrApartmentNotFound, got %v", err)
	}
}

func TestPaymentService_MarkPaid(t *testing.T) {
	apartments := newStubApartmentRepo()
	seededApartment(apartments)
	payments := newStubPaymentRepo()
	svc := newPaymentSvc(payments, apartments, &stubNotifier{})

	created, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		ApartmentID: "apt_1", Amount: 100, DueDate: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	paid, err := svc.MarkPaid(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != domain.PaymentPaid {
		t.Fatalf("expected paid, got %s", paid.Status)
	}
	if paid.PaymentDate == nil {
		t.Fatalf("expected payment date to be set")
	}

	// paid is terminal.
	if _, err := svc.MarkPaid(context.Background(), created.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPaymentService_List_OwnerScoped(t *testing.T) {
	apartments := newStubApartmentRepo()
	apartments.seed(&domain.Apartment{ID: "apt_1", Number: "501", Tower: "A", OwnerID: "owner_1"})
	apartments.seed(&domain.Apartment{ID: "apt_2", Number: "502", Tower: "A", OwnerID: "owner_2"})
	payments := newStubPaymentRepo()
	svc := newPaymentSvc(payments, apartments, &stubNotifier{})

	_, _ = svc.Record(context.Background(), ports.RecordPaymentInput{ApartmentID: "apt_1", Amount: 100, DueDate: time.Now().Add(time.Hour)})
	_, _ = svc.Record(context.Background(), ports.RecordPaymentInput{ApartmentID: "apt_2", Amount: 200, DueDate: time.Now().Add(time.Hour)})

	mine, err := svc.List(context.Background(), ports.ListPaymentsInput{Role: domain.RoleOwner, UserID: "owner_1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ApartmentID != "apt_1" {
		t.Fatalf("owner must only see own apartment charges, got %+v", mine)
	}

	all, err := svc.List(context.Background(), ports.ListPaymentsInput{Role: domain.RoleAdmin, UserID: "admin_1"})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin must see every charge, got %d", len(all))
	}
}

func TestPaymentService_List_OwnerWithoutApartments(t *testing.T) {
	svc := newPaymentSvc(newStubPaymentRepo(), newStubApartmentRepo(), &stubNotifier{})

	payments, err := svc.List(context.Background(), ports.ListPaymentsInput{Role: domain.RoleOwner, UserID: "owner_9"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payments) != 0 {
		t.Fatalf("expected empty result, got %+v", payments)
	}
}

func TestPaymentService_List_DerivesOverdue(t *testing.T) {
	apartments := newStubApartmentRepo()
	seededApartment(apartments)
	payments := newStubPaymentRepo()
	svc := newPaymentSvc(payments, apartments, &stubNotifier{})

	created, err := svc.Record(context.Background(), ports.RecordPaymentInput{
		ApartmentID: "apt_1", Amount: 100, DueDate: time.Now().Add(-24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	listed, err := svc.List(context.Background(), ports.ListPaymentsInput{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Status != domain.PaymentOverdue {
		t.Fatalf("expected overdue at read time, got %+v", listed)
	}
	// Stored status is untouched.
	if payments.byID[created.ID].Status != domain.PaymentPending {
		t.Fatalf("stored status must stay pending")
	}
}
