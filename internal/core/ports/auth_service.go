package ports

import (
	"context"

	"github.com/userportal/registration-system/internal/core/domain"
)

// RegisterInput carries a shape-validated registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	AdminLogin(ctx context.Context, username, password string) (string, *domain.Admin, error)
}
