// Package hash provides the bcrypt implementation of ports.PasswordHasher.
package hash

import (
	"golang.org/x/crypto/bcrypt"
)

const defaultCost = 10

// BcryptHasher hashes passwords with bcrypt at a fixed work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside the
// bcrypt range fall back to the default (10).
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted digest. bcrypt embeds a fresh random salt, so two
// calls with the same plaintext yield different digests.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest is
// not an error, just a non-match.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
