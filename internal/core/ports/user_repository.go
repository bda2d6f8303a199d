package ports

import (
	"context"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

// UserRepository defines persistence for user credentials and identities.
// The backing store enforces email uniqueness; Create returns
// domain.ErrEmailTaken on a duplicate so concurrent registrations cannot
// both succeed.
type UserRepository interface {
	// FindByEmail matches the already-normalized (lowercased) email exactly.
	// Returns domain.ErrUserNotFound when absent, including for empty input.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
