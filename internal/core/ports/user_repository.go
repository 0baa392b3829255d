package ports

import (
	"context"

	"github.com/userportal/registration-system/internal/core/domain"
)

// UserRepository defines the persistence interface for registered users.
//
// Create must enforce username/email uniqueness atomically: a racing
// duplicate insert has to fail with domain.ErrUserExists rather than
// silently succeed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
