package domain

import "time"

const RoleAdmin = "admin"

// User is an account created through self-service registration.
// The password digest is never serialized in API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Admin is a back-office account. Admins are seeded out-of-band and are
// read-only from the request flows; only login ever touches them.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the claim set carried inside an access token.
type Identity struct {
	ID       string
	Username string
	Role     string
}
