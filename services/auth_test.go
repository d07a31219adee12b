package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestValidateLoginInput(t *testing.T) {
	data := map[string]interface{}{
		"email":    "  d@example.com ",
		"password": "secret",
		"role":     "doctor",
	}
	require.NoError(t, validateLoginInput(data))
	// trimming is applied in place
	assert.Equal(t, "d@example.com", data["email"])
}

func TestValidateLoginInput_MissingFields(t *testing.T) {
	cases := []map[string]interface{}{
		{"password": "secret", "role": "doctor"},
		{"email": "d@example.com", "role": "doctor"},
		{"email": "d@example.com", "password": "secret"},
		{"email": "   ", "password": "secret", "role": "doctor"},
		{"email": 42, "password": "secret", "role": "doctor"},
	}
	for _, data := range cases {
		assert.Error(t, validateLoginInput(data))
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret@1")
	require.NoError(t, err)

	assert.NoError(t, verifyPassword(hash, "Secret@1"))
	assert.Error(t, verifyPassword(hash, "wrong"))
	assert.Error(t, verifyPassword("", "Secret@1"))

	// sanity on the hash itself
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret@1")))
}

func TestIncrementLoginAttempts(t *testing.T) {
	ResetLoginAttempts("T0001")

	assert.Equal(t, 1, IncrementLoginAttempts("T0001"))
	assert.Equal(t, 2, IncrementLoginAttempts("T0001"))
	assert.Equal(t, 3, IncrementLoginAttempts("T0001"))

	ResetLoginAttempts("T0001")
	assert.Equal(t, 1, IncrementLoginAttempts("T0001"))
}
