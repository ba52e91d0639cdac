package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")
	users := NewUserService(db)
	ctx := context.Background()

	token, err := auth.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	user, err := users.GetProfile(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "imperial", user.PreferredUnits)

	updated, err := users.UpdateProfile(ctx, claims.UserID, ProfileUpdate{
		FirstName:          "Alicia",
		LastName:           "Smith",
		PreferredUnits:     "metric",
		EmailNotifications: false,
		MarketingEmails:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "metric", updated.PreferredUnits)
	assert.False(t, updated.EmailNotifications)

	_, err = users.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")
	users := NewUserService(db)
	ctx := context.Background()

	token, err := auth.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	assert.ErrorIs(t, users.ChangePassword(ctx, claims.UserID, "wrongcurrent", "newpassword1"), ErrInvalidCredentials)

	require.NoError(t, users.ChangePassword(ctx, claims.UserID, "password123", "newpassword1"))

	_, err = auth.Login("alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login("alice@example.com", "newpassword1")
	assert.NoError(t, err)
}
