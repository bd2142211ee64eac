package auth

import (
	"context"
	"encoding/base64"
)

// TokenManager produces the Authorization header value for requests. The
// returned value includes the scheme, so transports can apply it verbatim
// regardless of whether the account uses basic or bearer credentials.
type TokenManager interface {
	GetAuthorizationHeader(ctx context.Context) (string, error)
}

// StaticTokenManager authenticates with a fixed OAuth access token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a manager for a pre-issued bearer token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetAuthorizationHeader returns the bearer header for the static token.
func (m *StaticTokenManager) GetAuthorizationHeader(ctx context.Context) (string, error) {
	return "Bearer " + m.token, nil
}

// APITokenManager authenticates with an agent email plus account API token.
type APITokenManager struct {
	email    string
	apiToken string
}

// NewAPITokenManager creates a manager for email/API token credentials.
func NewAPITokenManager(email, apiToken string) *APITokenManager {
	return &APITokenManager{email: email, apiToken: apiToken}
}

// GetAuthorizationHeader returns the basic auth header. The API convention
// appends "/token" to the email so the server can tell API tokens apart
// from passwords.
func (m *APITokenManager) GetAuthorizationHeader(ctx context.Context) (string, error) {
	credentials := m.email + "/token:" + m.apiToken

	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials)), nil
}
