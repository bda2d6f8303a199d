package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type PaymentService struct {
	repo       ports.PaymentRepository
	apartments ports.ApartmentRepository
	notifier   ports.Notifier
	log        zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, apartments ports.ApartmentRepository, notifier ports.Notifier, log zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, apartments: apartments, notifier: notifier, log: log}
}

// Record registers a monthly administration charge against an apartment and
// notifies the owner.
func (s *PaymentService) Record(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
	apartment, err := s.apartments.FindByID(ctx, input.ApartmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ApartmentID: apartment.ID,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      domain.PaymentPending,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		s.log.Error().Err(err).Str("apartment_id", apartment.ID).Msg("failed to record payment")
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationInput{
		Title:         "Administration charge",
		Message:       fmt.Sprintf("%.2f due %s for apartment %s-%s", created.Amount, created.DueDate.Format("2006-01-02"), apartment.Number, apartment.Tower),
		Type:          domain.NotifPayment,
		RecipientType: domain.RecipientUser,
		RecipientID:   apartment.OwnerID,
		ApartmentID:   apartment.ID,
	})

	s.log.Info().Str("payment_id", created.ID).Str("apartment_id", apartment.ID).Float64("amount", created.Amount).Msg("payment recorded")
	return created, nil
}

// MarkPaid settles a pending or overdue charge.
func (s *PaymentService) MarkPaid(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !payment.Status.CanTransitionTo(domain.PaymentPaid) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, payment.Status, domain.PaymentPaid)
	}

	paidAt := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, payment.ID, domain.PaymentPaid, &paidAt); err != nil {
		return nil, err
	}

	payment.Status = domain.PaymentPaid
	payment.PaymentDate = &paidAt
	payment.UpdatedAt = paidAt

	s.log.Info().Str("payment_id", payment.ID).Msg("payment settled")
	return payment, nil
}

// List returns payments visible to the caller. Admins see everything; owners
// only charges against their own apartments.
func (s *PaymentService) List(ctx context.Context, input ports.ListPaymentsInput) ([]*domain.Payment, error) {
	var apartmentIDs []string
	if input.Role != domain.RoleAdmin {
		owned, err := s.apartments.FindByOwner(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		if len(owned) == 0 {
			return []*domain.Payment{}, nil
		}
		apartmentIDs = make([]string, 0, len(owned))
		for _, a := range owned {
			apartmentIDs = append(apartmentIDs, a.ID)
		}
	}

	payments, err := s.repo.List(ctx, apartmentIDs)
	if err != nil {
		return nil, err
	}

	// Derive the overdue state at read time; the stored status stays pending
	// until settled or explicitly flagged.
	now := time.Now().UTC()
	for _, p := range payments {
		if p.IsOverdue(now) {
			p.Status = domain.PaymentOverdue
		}
	}
	return payments, nil
}
