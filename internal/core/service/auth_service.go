package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userportal/registration-system/internal/core/domain"
	"github.com/userportal/registration-system/internal/core/ports"
)

// authService implements registration and admin login.
type authService struct {
	users  ports.UserRepository
	admins ports.AdminRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	cache  ports.UserListCache
	log    zerolog.Logger
}

// NewAuthService returns an AuthService implementation. cache may be nil
// when no listing cache is configured.
func NewAuthService(
	users ports.UserRepository,
	admins ports.AdminRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	cache ports.UserListCache,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		users:  users,
		admins: admins,
		hasher: hasher,
		tokens: tokens,
		cache:  cache,
		log:    log,
	}
}

// Register hashes the password and persists a new user. The repository's
// unique indexes arbitrate a racing duplicate insert; the pre-check only
// exists to answer the common case without burning a bcrypt round.
func (s *authService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	taken, err := s.users.UsernameOrEmailTaken(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to invalidate user listing cache")
		}
	}

	return created, nil
}

// AdminLogin verifies credentials and issues an access token. Unknown
// username and wrong password collapse into the same error so the response
// cannot be used to enumerate accounts.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, admin.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}
