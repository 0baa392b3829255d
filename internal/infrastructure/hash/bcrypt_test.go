package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret1" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("secret1", digest) {
		t.Fatalf("Verify rejected matching password")
	}
	if h.Verify("secret2", digest) {
		t.Fatalf("Verify accepted wrong password")
	}
}

func TestBcryptHasher_SaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("samepassword")
	if err != nil {
		t.Fatalf("first Hash: %v", err)
	}
	second, err := h.Hash("samepassword")
	if err != nil {
		t.Fatalf("second Hash: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct digests for identical input")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$broken"} {
		if h.Verify("whatever", digest) {
			t.Fatalf("Verify accepted malformed digest %q", digest)
		}
	}
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(99)
	if h.cost != defaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
