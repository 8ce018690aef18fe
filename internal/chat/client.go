// Package chat is a thin client for the external chat provider. The backend
// only consumes two operations: mirroring a user into the provider and
// minting a client token for them.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultBaseURL = "https://chat.stream-io-api.com"

type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, apiSecret string) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, errors.New("chat api key and secret are required")
	}
	return &Client{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// UpsertUser mirrors a user into the chat provider. Callers treat failures
// as best-effort: they log and move on.
func (c *Client) UpsertUser(ctx context.Context, id, name, image string) error {
	payload := map[string]interface{}{
		"users": map[string]interface{}{
			id: map[string]string{
				"id":    id,
				"name":  name,
				"image": image,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode upsert payload: %w", err)
	}

	url := fmt.Sprintf("%s/users?api_key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upsert request: %w", err)
	}

	serverToken, err := c.serverToken()
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", serverToken)
	req.Header.Set("Stream-Auth-Type", "jwt")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upsert request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upsert rejected: status=%d body=%s", resp.StatusCode, detail)
	}

	return nil
}

// GenerateToken mints a client token for the given user. The provider's
// scheme is a JWT over {user_id} signed with the API secret, so no network
// call is needed.
func (c *Client) GenerateToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
	})
	return token.SignedString([]byte(c.apiSecret))
}

// serverToken authenticates this backend to the provider API.
func (c *Client) serverToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"server": true,
	})
	signed, err := token.SignedString([]byte(c.apiSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign server token: %w", err)
	}
	return signed, nil
}
