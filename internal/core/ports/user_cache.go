package ports

import (
	"context"

	"github.com/userportal/registration-system/internal/core/domain"
)

// UserListCache is a short-lived cache for the admin user listing.
// Implementations are best-effort: a cache failure never fails the request.
type UserListCache interface {
	Get(ctx context.Context) ([]domain.User, bool, error)
	Set(ctx context.Context, users []domain.User) error
	Invalidate(ctx context.Context) error
}
