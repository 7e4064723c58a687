package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "password123")

	assert.True(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("wrongpassword", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestPasswordCheckMalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, hasher.Check("password123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password123", ""))
}

func TestPasswordHasherCostOutOfRange(t *testing.T) {
	// Nonsense costs fall back to the bcrypt default instead of failing.
	hasher := NewPasswordHasher(999)

	hash, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("password123", hash))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("password123")
	assert.NoError(t, err)
	second, err := hasher.Hash("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
