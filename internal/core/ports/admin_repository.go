package ports

import (
	"context"

	"github.com/userportal/registration-system/internal/core/domain"
)

// AdminRepository defines read access to back-office accounts.
// Seed creates the account only when the username is not present yet.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Seed(ctx context.Context, username, passwordHash string) error
}
