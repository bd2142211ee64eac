package client

import (
	"context"
	"fmt"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// TicketsClient implements desk.TicketsClient.
type TicketsClient struct {
	httpClient *http.Client
}

// NewTicketsClient creates a new tickets client.
func NewTicketsClient(httpClient *http.Client) *TicketsClient {
	return &TicketsClient{httpClient: httpClient}
}

// ListWithPath implements desk.PaginationClient for tickets.
func (c *TicketsClient) ListWithPath(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[desk.Ticket], error) {
	return listPage[desk.Ticket](ctx, c.httpClient, path, "tickets", params)
}

// List implements desk.TicketsClient.List.
func (c *TicketsClient) List(ctx context.Context, params *desk.QueryParams) (*desk.ListResponse[desk.Ticket], error) {
	return c.ListWithPath(ctx, constants.APIPathTickets, params)
}

// ListAll implements desk.TicketsClient.ListAll.
func (c *TicketsClient) ListAll(ctx context.Context, params *desk.QueryParams) ([]desk.Ticket, error) {
	return desk.FetchAllPages(ctx, c, constants.APIPathTickets, params, desk.DefaultPaginationOptions())
}

// Create implements desk.TicketsClient.Create.
func (c *TicketsClient) Create(ctx context.Context, request *desk.TicketRequest) (*desk.Ticket, error) {
	body := map[string]interface{}{"ticket": request}

	resp, err := c.httpClient.Post(ctx, constants.APIPathTickets, body)
	if err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	ticket, err := desk.UnmarshalEnvelope[desk.Ticket](resp.Body, "ticket")
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// Get implements desk.TicketsClient.Get.
func (c *TicketsClient) Get(ctx context.Context, id int64) (*desk.Ticket, error) {
	path, err := desk.BuildPath("api", "v2", "tickets", id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ticket: %w", err)
	}

	ticket, err := desk.UnmarshalEnvelope[desk.Ticket](resp.Body, "ticket")
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// Update implements desk.TicketsClient.Update.
func (c *TicketsClient) Update(ctx context.Context, id int64, request *desk.TicketRequest) (*desk.Ticket, error) {
	path, err := desk.BuildPath("api", "v2", "tickets", id)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"ticket": request}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating ticket: %w", err)
	}

	ticket, err := desk.UnmarshalEnvelope[desk.Ticket](resp.Body, "ticket")
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

// Delete implements desk.TicketsClient.Delete.
func (c *TicketsClient) Delete(ctx context.Context, id int64) error {
	path, err := desk.BuildPath("api", "v2", "tickets", id)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting ticket: %w", err)
	}

	return nil
}
