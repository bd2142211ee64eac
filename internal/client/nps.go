package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// NPSClient implements desk.NPSClient. Surveys, invitations, and recipients
// are separate list shapes, so pagination is exposed per shape through
// pageFetcher adapters.
type NPSClient struct {
	httpClient *http.Client
}

// NewNPSClient creates a new NPS client.
func NewNPSClient(httpClient *http.Client) *NPSClient {
	return &NPSClient{httpClient: httpClient}
}

// ListSurveys implements desk.NPSClient.ListSurveys.
func (c *NPSClient) ListSurveys(ctx context.Context, params *desk.QueryParams) (*desk.ListResponse[desk.Survey], error) {
	return listPage[desk.Survey](ctx, c.httpClient, constants.APIPathSurveys, "surveys", params)
}

// GetSurvey implements desk.NPSClient.GetSurvey.
func (c *NPSClient) GetSurvey(ctx context.Context, id int64) (*desk.Survey, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting survey: %w", err)
	}

	survey, err := desk.UnmarshalEnvelope[desk.Survey](resp.Body, "survey")
	if err != nil {
		return nil, err
	}

	return &survey, nil
}

// ListInvitations implements desk.NPSClient.ListInvitations.
func (c *NPSClient) ListInvitations(ctx context.Context, surveyID int64, params *desk.QueryParams) (*desk.ListResponse[desk.Invitation], error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "invitations")
	if err != nil {
		return nil, err
	}

	return listPage[desk.Invitation](ctx, c.httpClient, path, "invitations", params)
}

// GetInvitation implements desk.NPSClient.GetInvitation.
func (c *NPSClient) GetInvitation(ctx context.Context, surveyID, invitationID int64) (*desk.Invitation, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "invitations", invitationID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	invitation, err := desk.UnmarshalEnvelope[desk.Invitation](resp.Body, "invitation")
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}

// CreateInvitation implements desk.NPSClient.CreateInvitation.
func (c *NPSClient) CreateInvitation(ctx context.Context, surveyID int64, request *desk.InvitationRequest) (*desk.Invitation, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "invitations")
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"invitation": request}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating invitation: %w", err)
	}

	invitation, err := desk.UnmarshalEnvelope[desk.Invitation](resp.Body, "invitation")
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}

// ListRecipients implements desk.NPSClient.ListRecipients.
func (c *NPSClient) ListRecipients(ctx context.Context, surveyID int64, params *desk.QueryParams) (*desk.ListResponse[desk.Recipient], error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "recipients")
	if err != nil {
		return nil, err
	}

	return listPage[desk.Recipient](ctx, c.httpClient, path, "recipients", params)
}

// ListAllRecipients implements desk.NPSClient.ListAllRecipients.
func (c *NPSClient) ListAllRecipients(ctx context.Context, surveyID int64, params *desk.QueryParams) ([]desk.Recipient, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "recipients")
	if err != nil {
		return nil, err
	}

	fetcher := pageFetcher[desk.Recipient](func(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[desk.Recipient], error) {
		return listPage[desk.Recipient](ctx, c.httpClient, path, "recipients", params)
	})

	return desk.FetchAllPages(ctx, fetcher, path, params, desk.DefaultPaginationOptions())
}

// GetRecipient implements desk.NPSClient.GetRecipient.
func (c *NPSClient) GetRecipient(ctx context.Context, surveyID, recipientID int64) (*desk.Recipient, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "recipients", recipientID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting recipient: %w", err)
	}

	recipient, err := desk.UnmarshalEnvelope[desk.Recipient](resp.Body, "recipient")
	if err != nil {
		return nil, err
	}

	return &recipient, nil
}

// CreateRecipient implements desk.NPSClient.CreateRecipient.
func (c *NPSClient) CreateRecipient(ctx context.Context, surveyID int64, request *desk.RecipientRequest) (*desk.Recipient, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "recipients")
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"recipient": request}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating recipient: %w", err)
	}

	recipient, err := desk.UnmarshalEnvelope[desk.Recipient](resp.Body, "recipient")
	if err != nil {
		return nil, err
	}

	return &recipient, nil
}

// UpdateRecipient implements desk.NPSClient.UpdateRecipient.
func (c *NPSClient) UpdateRecipient(ctx context.Context, surveyID, recipientID int64, request *desk.RecipientRequest) (*desk.Recipient, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "recipients", recipientID)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"recipient": request}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating recipient: %w", err)
	}

	recipient, err := desk.UnmarshalEnvelope[desk.Recipient](resp.Body, "recipient")
	if err != nil {
		return nil, err
	}

	return &recipient, nil
}

// SearchRecipients implements desk.NPSClient.SearchRecipients.
func (c *NPSClient) SearchRecipients(ctx context.Context, surveyID int64, email string) ([]desk.Recipient, error) {
	path, err := desk.BuildPath("api", "v2", "nps", "surveys", surveyID, "recipients", "search")
	if err != nil {
		return nil, err
	}

	query := url.Values{"query": []string{email}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("searching recipients: %w", err)
	}

	return desk.UnmarshalEnvelope[[]desk.Recipient](resp.Body, "recipients")
}
