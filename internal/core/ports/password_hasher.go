package ports

// PasswordHasher abstracts the one-way password hashing scheme.
//
// Hash produces a salted digest; two calls with the same plaintext yield
// different digests. Verify must never fail hard on a malformed digest —
// it simply reports false.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
