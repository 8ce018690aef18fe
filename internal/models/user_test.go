package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHashPassword(t *testing.T) {
	user := &User{Password: "secret123"}
	require.NoError(t, user.HashPassword())

	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"), "expected a bcrypt hash, got %q", user.Password)
}

func TestMatchPassword(t *testing.T) {
	user := &User{Password: "secret123"}
	require.NoError(t, user.HashPassword())

	assert.True(t, user.MatchPassword("secret123"))
	assert.False(t, user.MatchPassword("secret124"))
	assert.False(t, user.MatchPassword(""))
}

func TestPasswordNeverSerialized(t *testing.T) {
	user := &User{
		Email:    "amelie@example.com",
		Password: "secret123",
		FullName: "Amelie",
	}
	require.NoError(t, user.HashPassword())

	body, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), user.Password)
}

func TestHasFriend(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	user := &User{Friends: []primitive.ObjectID{a}}

	assert.True(t, user.HasFriend(a))
	assert.False(t, user.HasFriend(b))
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(NewNotFoundError("User not found"))
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Status)

	_, ok = AsAppError(assert.AnError)
	assert.False(t, ok)
}
