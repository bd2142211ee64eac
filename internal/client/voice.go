package client

import (
	"context"
	"fmt"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// VoiceClient implements desk.VoiceClient.
type VoiceClient struct {
	httpClient *http.Client
}

// NewVoiceClient creates a new voice statistics client.
func NewVoiceClient(httpClient *http.Client) *VoiceClient {
	return &VoiceClient{httpClient: httpClient}
}

// HistoricalQueueActivity implements desk.VoiceClient.HistoricalQueueActivity.
func (c *VoiceClient) HistoricalQueueActivity(ctx context.Context) (*desk.QueueActivity, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathVoiceStats+"/historical_queue_activity", nil)
	if err != nil {
		return nil, fmt.Errorf("getting historical queue activity: %w", err)
	}

	activity, err := desk.UnmarshalEnvelope[desk.QueueActivity](resp.Body, "historical_queue_activity")
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

// CurrentQueueActivity implements desk.VoiceClient.CurrentQueueActivity.
func (c *VoiceClient) CurrentQueueActivity(ctx context.Context) (*desk.CurrentQueueActivity, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathVoiceStats+"/current_queue_activity", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current queue activity: %w", err)
	}

	activity, err := desk.UnmarshalEnvelope[desk.CurrentQueueActivity](resp.Body, "current_queue_activity")
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

// AgentsActivity implements desk.VoiceClient.AgentsActivity.
func (c *VoiceClient) AgentsActivity(ctx context.Context, params *desk.QueryParams) (*desk.ListResponse[desk.AgentActivity], error) {
	return listPage[desk.AgentActivity](ctx, c.httpClient, constants.APIPathVoiceStats+"/agents_activity", "agents_activity", params)
}

// AllAgentsActivity implements desk.VoiceClient.AllAgentsActivity.
func (c *VoiceClient) AllAgentsActivity(ctx context.Context, params *desk.QueryParams) ([]desk.AgentActivity, error) {
	fetcher := pageFetcher[desk.AgentActivity](func(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[desk.AgentActivity], error) {
		return listPage[desk.AgentActivity](ctx, c.httpClient, path, "agents_activity", params)
	})

	return desk.FetchAllPages(ctx, fetcher, constants.APIPathVoiceStats+"/agents_activity", params, desk.DefaultPaginationOptions())
}
