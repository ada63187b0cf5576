package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only keys on the first 72 bytes; longer inputs are an error in
// x/crypto but silently truncated by most other implementations. Truncate
// here so any password the boundary policy accepts can be hashed.
const bcryptMaxLen = 72

// Hasher wraps bcrypt with a configurable cost. A zero cost uses the
// library default.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > bcryptMaxLen {
		b = b[:bcryptMaxLen]
	}
	return b
}

// HashPassword returns a salted one-way hash. Output differs between calls
// for the same input; use CheckPassword to verify.
func (h *Hasher) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncate(plain), h.cost)
	return string(b), err
}

// CheckPassword reports whether plain matches the stored hash.
func (h *Hasher) CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}
