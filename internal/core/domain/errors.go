package domain

import "errors"

var (
	// ErrUserExists is returned when a registration collides with an
	// existing username or email, either during the pre-check or when the
	// store rejects a racing duplicate insert.
	ErrUserExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned by repositories when no record matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdminNotFound is returned by the admin repository. Login maps it
	// to ErrInvalidCredentials so callers cannot tell it apart from a
	// wrong password.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidCredentials covers both unknown-username and wrong-password
	// login failures.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired and ErrTokenInvalid are distinct so internals can
	// observe which case occurred; HTTP responses treat them identically.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
