package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyawatvinm/smart-fridge-intellect-sub000/internal/testdb"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(testdb.New(t), "test-secret")

	token, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Duplicate email is rejected.
	_, err = svc.Register("Alice Again", "alice@example.com", "password123")
	require.Error(t, err)

	token, err = svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Alice", claims.Name)
	assert.NotEqual(t, uuid.Nil, claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(testdb.New(t), "test-secret")

	_, err := svc.Register("Bob", "bob@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Login("bob@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testdb.New(t)
	svc := NewAuthService(db, "secret-a")
	other := NewAuthService(db, "secret-b")

	token, err := svc.Register("Carol", "carol@example.com", "password123")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}
