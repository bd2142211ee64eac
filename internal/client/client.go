// Package client implements the desk.Client interface over the HTTP
// transport.
package client

import (
	"time"

	"github.com/helpwire-io/deskapi/internal/auth"
	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// Client implements the desk.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       desk.Logger

	// Resource clients
	tags         desk.TagsClient
	ticketFields desk.TicketFieldsClient
	tickets      desk.TicketsClient
	nps          desk.NPSClient
	voice        desk.VoiceClient
}

// createTokenManager creates the appropriate token manager based on the
// configured credentials. API tokens win over OAuth tokens, which win over
// the password grant.
func createTokenManager(config *desk.Config) auth.TokenManager {
	if config.Email != "" && config.APIToken != "" {
		return auth.NewAPITokenManager(config.Email, config.APIToken)
	}

	if config.OAuthToken != "" {
		return auth.NewStaticTokenManager(config.OAuthToken)
	}

	if config.Username != "" && config.Password != "" {
		return auth.NewPasswordTokenManager(
			config.Endpoint,
			config.ClientID,
			config.ClientSecret,
			config.Username,
			config.Password,
		)
	}

	return nil // No authentication
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *desk.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client for the configured endpoint.
func New(config *desk.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, desk.ErrEndpointRequired
	}

	tokenManager := createTokenManager(config)
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTokenManager creates a client with a custom token manager.
func NewWithTokenManager(config *desk.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.Endpoint == "" {
		return nil, desk.ErrEndpointRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Tags implements desk.Client.Tags.
func (c *Client) Tags() desk.TagsClient {
	return c.tags
}

// TicketFields implements desk.Client.TicketFields.
func (c *Client) TicketFields() desk.TicketFieldsClient {
	return c.ticketFields
}

// Tickets implements desk.Client.Tickets.
func (c *Client) Tickets() desk.TicketsClient {
	return c.tickets
}

// NPS implements desk.Client.NPS.
func (c *Client) NPS() desk.NPSClient {
	return c.nps
}

// Voice implements desk.Client.Voice.
func (c *Client) Voice() desk.VoiceClient {
	return c.voice
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tags = NewTagsClient(c.httpClient)
	c.ticketFields = NewTicketFieldsClient(c.httpClient)
	c.tickets = NewTicketsClient(c.httpClient)
	c.nps = NewNPSClient(c.httpClient)
	c.voice = NewVoiceClient(c.httpClient)
}
