package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies user passwords with bcrypt. The cost is
// fixed at construction time.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (ph *PasswordHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), ph.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check reports whether plain matches the stored hash. It returns false for
// any mismatch, including a malformed hash.
func (ph *PasswordHasher) Check(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
