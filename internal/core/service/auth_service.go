package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/api/metrics"
	"github.com/altosdelparque/residential-system/internal/auth"
	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

// AuthService implements registration, login, and profile lookup.
// It is the single place that strips password hashes from outgoing users.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleTenant
	}
	if !domain.IsValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	// Fast-path duplicate check. The authoritative guard is the unique email
	// index in the store: two concurrent registrations can both pass this
	// lookup, but only one Create will succeed.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		Cedula:       input.Cedula,
		Phone:        input.Phone,
		Role:         role,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{Token: token, User: sanitize(created)}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("disabled").Inc()
		return nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: sanitize(user)}, nil
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}

// sanitize returns a copy of the user with the password hash cleared.
func sanitize(u *domain.User) *domain.User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
