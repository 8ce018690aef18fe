package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("", "secret")
	assert.Error(t, err)
	_, err = NewClient("key", "")
	assert.Error(t, err)

	client, err := NewClient("key", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestGenerateToken(t *testing.T) {
	client, err := NewClient("key", "secret")
	require.NoError(t, err)

	signed, err := client.GenerateToken("user-1")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["user_id"])
}

func TestGenerateTokenEmptyUser(t *testing.T) {
	client, err := NewClient("key", "secret")
	require.NoError(t, err)

	_, err = client.GenerateToken("")
	assert.Error(t, err)
}

func TestUpsertUser(t *testing.T) {
	var got struct {
		Users map[string]map[string]string `json:"users"`
	}
	var authHeader, authType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		authType = r.Header.Get("Stream-Auth-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := NewClient("key", "secret")
	require.NoError(t, err)
	client.baseURL = srv.URL

	err = client.UpsertUser(context.Background(), "user-1", "Nina", "https://example.com/pic.png")
	require.NoError(t, err)

	require.Contains(t, got.Users, "user-1")
	assert.Equal(t, "Nina", got.Users["user-1"]["name"])
	assert.Equal(t, "https://example.com/pic.png", got.Users["user-1"]["image"])
	assert.NotEmpty(t, authHeader)
	assert.Equal(t, "jwt", authType)
}

func TestUpsertUserRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"nope"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClient("key", "secret")
	require.NoError(t, err)
	client.baseURL = srv.URL

	err = client.UpsertUser(context.Background(), "user-1", "Nina", "")
	assert.Error(t, err)
}
