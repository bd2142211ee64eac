package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/helpwire-io/deskapi/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoValidCredentials = errors.New("no valid credentials available")
)

// OAuthConfig configures the OAuth token manager.
type OAuthConfig struct {
	// TokenURL is the full token endpoint URL
	TokenURL string

	// ClientID and ClientSecret identify the OAuth client
	ClientID     string
	ClientSecret string

	// Username and Password enable the password grant
	Username string
	Password string

	// Scope requested for issued tokens
	Scope string

	// AccessToken is an optional pre-issued token
	AccessToken string

	// RefreshToken enables the refresh grant
	RefreshToken string

	// HTTPClient overrides the client used for token requests
	HTTPClient *http.Client
}

// OAuthTokenManager obtains and refreshes OAuth tokens via the password
// and refresh grants.
type OAuthTokenManager struct {
	config     *OAuthConfig
	store      *TokenStore
	httpClient *http.Client
	refreshMu  sync.Mutex
}

// NewOAuthTokenManager creates a token manager for the given config.
func NewOAuthTokenManager(config *OAuthConfig) *OAuthTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	manager := &OAuthTokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			TokenType:    "bearer",
		})
	}

	return manager
}

// NewPasswordTokenManager creates a token manager for the password grant
// against the endpoint's token URL.
func NewPasswordTokenManager(endpoint, clientID, clientSecret, username, password string) *OAuthTokenManager {
	return NewOAuthTokenManager(&OAuthConfig{
		TokenURL:     strings.TrimSuffix(endpoint, "/") + "/oauth/tokens",
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Username:     username,
		Password:     password,
		Scope:        "read write",
	})
}

// GetAuthorizationHeader returns the bearer header for a valid token,
// obtaining or refreshing one as needed.
func (m *OAuthTokenManager) GetAuthorizationHeader(ctx context.Context) (string, error) {
	token, err := m.GetToken(ctx)
	if err != nil {
		return "", err
	}

	return "Bearer " + token, nil
}

// GetToken returns a valid access token, requesting one if necessary.
func (m *OAuthTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock
	token = m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	newToken, err := m.obtainToken(ctx, token)
	if err != nil {
		return "", err
	}

	m.store.Set(newToken)

	return newToken.AccessToken, nil
}

// RefreshToken forces a new token request, discarding the current token.
func (m *OAuthTokenManager) RefreshToken(ctx context.Context) error {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	newToken, err := m.obtainToken(ctx, m.store.Get())
	if err != nil {
		return err
	}

	m.store.Set(newToken)

	return nil
}

// SetToken manually sets the access token.
func (m *OAuthTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// obtainToken picks the grant to use based on available credentials.
func (m *OAuthTokenManager) obtainToken(ctx context.Context, current *Token) (*Token, error) {
	switch {
	case current != nil && current.RefreshToken != "":
		return m.requestToken(ctx, map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": current.RefreshToken,
			"client_id":     m.config.ClientID,
			"client_secret": m.config.ClientSecret,
		})
	case m.config.RefreshToken != "":
		return m.requestToken(ctx, map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": m.config.RefreshToken,
			"client_id":     m.config.ClientID,
			"client_secret": m.config.ClientSecret,
		})
	case m.config.Username != "" && m.config.Password != "":
		return m.requestToken(ctx, map[string]string{
			"grant_type":    "password",
			"username":      m.config.Username,
			"password":      m.config.Password,
			"client_id":     m.config.ClientID,
			"client_secret": m.config.ClientSecret,
			"scope":         m.config.Scope,
		})
	default:
		return nil, ErrNoValidCredentials
	}
}

// requestToken posts a JSON grant request to the token endpoint.
func (m *OAuthTokenManager) requestToken(ctx context.Context, grant map[string]string) (*Token, error) {
	body, err := json.Marshal(grant)
	if err != nil {
		return nil, fmt.Errorf("encoding token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}

		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("token request failed: %s: %s", errResp.Error, errResp.Description)
		}

		return nil, fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var token Token

	err = json.Unmarshal(respBody, &token)
	if err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
