package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type ApartmentService struct {
	repo ports.ApartmentRepository
	log  zerolog.Logger
}

func NewApartmentService(repo ports.ApartmentRepository, log zerolog.Logger) *ApartmentService {
	return &ApartmentService{repo: repo, log: log}
}

func (s *ApartmentService) Create(ctx context.Context, input ports.CreateApartmentInput) (*domain.Apartment, error) {
	status := input.Status
	if status == "" {
		status = domain.ApartmentVacant
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	apartment := &domain.Apartment{
		Number:    input.Number,
		Tower:     input.Tower,
		Floor:     input.Floor,
		OwnerID:   input.OwnerID,
		Status:    status,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, apartment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("apartment_id", created.ID).Str("number", created.Number).Str("tower", created.Tower).Msg("apartment registered")
	return created, nil
}

func (s *ApartmentService) Get(ctx context.Context, id string) (*domain.Apartment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApartmentService) List(ctx context.Context) ([]*domain.Apartment, error) {
	return s.repo.List(ctx)
}

func (s *ApartmentService) UpdateStatus(ctx context.Context, id string, status domain.ApartmentStatus) (*domain.Apartment, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidTransition
	}

	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, apartment.ID, status); err != nil {
		return nil, err
	}

	apartment.Status = status
	apartment.UpdatedAt = time.Now().UTC()
	return apartment, nil
}
