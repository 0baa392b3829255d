package ports

import (
	"context"

	"github.com/userportal/registration-system/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
}
