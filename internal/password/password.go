package password

import (
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Hasher wraps bcrypt with a configurable work factor.
type Hasher struct {
	cost int // bcrypt cost, clamped to the library's valid range
}

// NewHasher returns a Hasher with the given cost. Costs outside the
// valid bcrypt range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost // Out-of-range cost falls back to default
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt digest of the plaintext. Hashing the same
// plaintext twice yields different digests; both verify.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err // Hashing failed (e.g., password exceeds bcrypt's 72-byte limit)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. A malformed digest
// is treated as a mismatch, never an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
