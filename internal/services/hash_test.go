package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Taichi412/checklist-backend/internal/services"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := services.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, services.VerifyPassword(hash, "password123"))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := services.HashPassword("password123")
	require.NoError(t, err)

	assert.Error(t, services.VerifyPassword(hash, "wrong-password"))
}

func TestHashPassword_CostFactor(t *testing.T) {
	hash, err := services.HashPassword("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}
