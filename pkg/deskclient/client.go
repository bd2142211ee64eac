// Package deskclient provides the main entry point for creating helpdesk API clients
package deskclient

import (
	"context"
	"strings"

	"github.com/helpwire-io/deskapi/internal/client"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// New creates a new helpdesk API client from the given configuration.
func New(ctx context.Context, config *desk.Config) (desk.Client, error) {
	if config == nil {
		return nil, desk.ErrConfigRequired
	}

	endpoint, err := resolveEndpoint(config)
	if err != nil {
		return nil, err
	}

	config.Endpoint = endpoint

	return client.New(config)
}

// resolveEndpoint normalizes the configured endpoint. An explicit Endpoint
// wins over Subdomain when both are set.
func resolveEndpoint(config *desk.Config) (string, error) {
	endpoint := config.Endpoint
	if endpoint == "" && config.Subdomain != "" {
		endpoint = "https://" + config.Subdomain + ".zendesk.com"
	}

	if endpoint == "" {
		return "", desk.ErrEndpointRequired
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint, nil
}

// NewWithAPIToken creates a client authenticating with an email/API token pair.
func NewWithAPIToken(ctx context.Context, subdomain, email, apiToken string) (desk.Client, error) {
	return New(ctx, &desk.Config{
		Subdomain: subdomain,
		Email:     email,
		APIToken:  apiToken,
	})
}

// NewWithOAuthToken creates a client authenticating with a pre-issued OAuth
// access token.
func NewWithOAuthToken(ctx context.Context, subdomain, token string) (desk.Client, error) {
	return New(ctx, &desk.Config{
		Subdomain:  subdomain,
		OAuthToken: token,
	})
}

// NewWithPassword creates a client using the OAuth password grant.
func NewWithPassword(ctx context.Context, subdomain, username, password string) (desk.Client, error) {
	return New(ctx, &desk.Config{
		Subdomain: subdomain,
		Username:  username,
		Password:  password,
	})
}
