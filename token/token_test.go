package token

import (
	"testing"
	"time"

	"curely/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Setenv("SECRET_KEY", "super-secret")

	tok, err := Generate("D0001", role.Doctor, true)
	require.NoError(t, err)

	claims, err := Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "D0001", claims.ID)
	assert.Equal(t, role.Doctor, claims.Role)
	assert.True(t, claims.Verification)
}

func TestParse_Expired(t *testing.T) {
	t.Setenv("SECRET_KEY", "super-secret")

	tok, err := generate("C0001", role.Patient, true, -1*time.Second)
	require.NoError(t, err)

	_, err = Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "right-secret")
	tok, err := Generate("L0001", role.Lab, false)
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "wrong-secret")
	_, err = Parse(tok)
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	t.Setenv("SECRET_KEY", "k")

	_, err := Parse("not.a.jwt")
	assert.Error(t, err)
}
