package ports

import "github.com/userportal/registration-system/internal/core/domain"

// TokenService issues and verifies signed, time-limited identity tokens.
//
// Verify returns domain.ErrTokenExpired or domain.ErrTokenInvalid as
// distinct kinds; transport-level callers must respond identically to
// both so a client cannot probe which one occurred.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}
