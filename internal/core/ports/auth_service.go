package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Cedula   string
	Phone    string
	Password string
	// Role defaults to tenant when empty.
	Role string
}

// AuthResult pairs a signed bearer token with the authenticated user.
// The user never carries a password hash across this boundary.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
