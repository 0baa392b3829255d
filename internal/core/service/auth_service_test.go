package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/userportal/registration-system/internal/core/domain"
	"github.com/userportal/registration-system/internal/core/ports"
)

type stubUserRepo struct {
	byUsername map[string]*domain.User
	byEmail    map[string]*domain.User
	createErr  error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byUsername: make(map[string]*domain.User),
		byEmail:    make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = "id-" + user.Username
	r.byUsername[clone.Username] = &clone
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) UsernameOrEmailTaken(_ context.Context, username, email string) (bool, error) {
	if _, ok := r.byUsername[username]; ok {
		return true, nil
	}
	if _, ok := r.byEmail[email]; ok {
		return true, nil
	}
	return false, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byUsername))
	for _, u := range r.byUsername {
		users = append(users, *u)
	}
	return users, nil
}

type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	admin, ok := r.admins[username]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *admin
	return &clone, nil
}

func (r *stubAdminRepo) Seed(_ context.Context, username, passwordHash string) error {
	if _, ok := r.admins[username]; ok {
		return nil
	}
	r.admins[username] = &domain.Admin{ID: "admin-" + username, Username: username, PasswordHash: passwordHash}
	return nil
}

// stubHasher marks digests with a prefix so tests can tell hashed values
// from plaintext without paying for bcrypt.
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) { return "digest:" + plaintext, nil }

func (stubHasher) Verify(plaintext, digest string) bool { return digest == "digest:"+plaintext }

type stubTokens struct {
	issued []domain.Identity
}

func (s *stubTokens) Issue(identity domain.Identity) (string, error) {
	s.issued = append(s.issued, identity)
	return "token-for-" + identity.Username, nil
}

func (s *stubTokens) Verify(token string) (domain.Identity, error) {
	if !strings.HasPrefix(token, "token-for-") {
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	return domain.Identity{Username: strings.TrimPrefix(token, "token-for-"), Role: domain.RoleAdmin}, nil
}

type stubCache struct {
	users       []domain.User
	present     bool
	invalidated int
}

func (c *stubCache) Get(_ context.Context) ([]domain.User, bool, error) {
	return c.users, c.present, nil
}

func (c *stubCache) Set(_ context.Context, users []domain.User) error {
	c.users = users
	c.present = true
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.users = nil
	c.present = false
	c.invalidated++
	return nil
}

func newAuthService(users ports.UserRepository, admins ports.AdminRepository, tokens ports.TokenService, cache ports.UserListCache) ports.AuthService {
	return NewAuthService(users, admins, stubHasher{}, tokens, cache, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubCache{present: true}
	svc := newAuthService(repo, &stubAdminRepo{}, &stubTokens{}, cache)

	before := time.Now().UTC()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("password stored as plaintext")
	}
	if user.PasswordHash != "digest:secret1" {
		t.Fatalf("password not run through the hasher: %q", user.PasswordHash)
	}
	if user.CreatedAt.Before(before.Add(-time.Second)) {
		t.Fatalf("created_at not set: %v", user.CreatedAt)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected listing cache invalidation, got %d", cache.invalidated)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubAdminRepo{}, &stubTokens{}, nil)

	in := ports.RegisterInput{Username: "bob", Email: "bob@x.com", Password: "secret1"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_RacingDuplicateInsert(t *testing.T) {
	// The pre-check passes but the store rejects the insert, as happens
	// when two registrations race on the unique index.
	repo := newStubUserRepo()
	repo.createErr = domain.ErrUserExists
	svc := newAuthService(repo, &stubAdminRepo{}, &stubTokens{}, nil)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol",
		Email:    "carol@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_AdminLogin_Success(t *testing.T) {
	admins := &stubAdminRepo{admins: map[string]*domain.Admin{
		"root": {ID: "a1", Username: "root", PasswordHash: "digest:hunter22"},
	}}
	tokens := &stubTokens{}
	svc := newAuthService(newStubUserRepo(), admins, tokens, nil)

	token, admin, err := svc.AdminLogin(context.Background(), "root", "hunter22")
	if err != nil {
		t.Fatalf("AdminLogin returned error: %v", err)
	}
	if token != "token-for-root" {
		t.Fatalf("unexpected token: %q", token)
	}
	if admin.Username != "root" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
	if len(tokens.issued) != 1 || tokens.issued[0].Role != domain.RoleAdmin || tokens.issued[0].ID != "a1" {
		t.Fatalf("unexpected issued claims: %+v", tokens.issued)
	}
}

func TestAuthService_AdminLogin_IndistinguishableFailures(t *testing.T) {
	admins := &stubAdminRepo{admins: map[string]*domain.Admin{
		"root": {ID: "a1", Username: "root", PasswordHash: "digest:hunter22"},
	}}
	svc := newAuthService(newStubUserRepo(), admins, &stubTokens{}, nil)

	_, _, wrongPassword := svc.AdminLogin(context.Background(), "root", "nope")
	_, _, unknownUser := svc.AdminLogin(context.Background(), "ghost", "hunter22")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestAuthService_AdminLogin_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubAdminRepo{}, &stubTokens{}, nil)

	if _, _, err := svc.AdminLogin(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.AdminLogin(context.Background(), "root", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
