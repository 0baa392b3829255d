package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/userportal/registration-system/internal/core/domain"
	"github.com/userportal/registration-system/internal/core/ports"
)

// userService serves the admin user listing, fronted by an optional
// short-lived cache.
type userService struct {
	users ports.UserRepository
	cache ports.UserListCache
	log   zerolog.Logger
}

// NewUserService returns a UserService implementation. cache may be nil.
func NewUserService(users ports.UserRepository, cache ports.UserListCache, log zerolog.Logger) ports.UserService {
	return &userService{users: users, cache: cache, log: log}
}

// List returns all users ordered by creation time descending. Cache
// failures are logged and fall through to the store.
func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("user listing cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, users); err != nil {
			s.log.Warn().Err(err).Msg("user listing cache write failed")
		}
	}

	return users, nil
}
