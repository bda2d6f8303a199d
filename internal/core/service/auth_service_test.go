package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/altosdelparque/residential-system/internal/auth"
	"github.com/altosdelparque/residential-system/internal/core/domain"
	"github.com/altosdelparque/residential-system/internal/core/ports"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	clone := *user
	clone.ID = "user_" + strconv.Itoa(r.nextID)
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func newAuthSvc(repo ports.UserRepository) *AuthService {
	hasher := auth.NewPasswordHasher(4)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Cedula:   "100200300",
		Password: "Secret123",
		Role:     domain.RoleOwner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %s", result.User.Email)
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
	if !result.User.IsActive {
		t.Fatalf("new accounts must be active")
	}

	stored := repo.byEmail["alice@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Cedula:   "1",
		Password: "Secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.Role != domain.RoleTenant {
		t.Fatalf("expected default role tenant, got %s", result.User.Role)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Cedula:   "1",
		Password: "Secret123",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	input := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Cedula: "1", Password: "Secret123"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Cedula: "2",
		Password: "Secret123", Role: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "Carol@Example.com", "Secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected admin claims, got %s", claims.Role)
	}
	if claims.UserID != result.User.ID {
		t.Fatalf("token subject mismatch: %s vs %s", claims.UserID, result.User.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Cedula: "3", Password: "GoodPass1",
	})
	if _, err := svc.Login(context.Background(), "dave@example.com", "BadPass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	// Unknown email must look identical to a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "Whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Eve", Email: "eve@example.com", Cedula: "4", Password: "Secret123",
	})
	repo.byEmail["eve@example.com"].IsActive = false

	if _, err := svc.Login(context.Background(), "eve@example.com", "Secret123"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}
