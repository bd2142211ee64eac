package client

import (
	"context"
	"fmt"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// TicketFieldsClient implements desk.TicketFieldsClient.
type TicketFieldsClient struct {
	httpClient *http.Client
}

// NewTicketFieldsClient creates a new ticket fields client.
func NewTicketFieldsClient(httpClient *http.Client) *TicketFieldsClient {
	return &TicketFieldsClient{httpClient: httpClient}
}

// ListWithPath implements desk.PaginationClient for ticket fields.
func (c *TicketFieldsClient) ListWithPath(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[desk.TicketField], error) {
	return listPage[desk.TicketField](ctx, c.httpClient, path, "ticket_fields", params)
}

// List implements desk.TicketFieldsClient.List.
func (c *TicketFieldsClient) List(ctx context.Context, params *desk.QueryParams) (*desk.ListResponse[desk.TicketField], error) {
	return c.ListWithPath(ctx, constants.APIPathTicketFields, params)
}

// ListAll implements desk.TicketFieldsClient.ListAll.
func (c *TicketFieldsClient) ListAll(ctx context.Context, params *desk.QueryParams) ([]desk.TicketField, error) {
	return desk.FetchAllPages(ctx, c, constants.APIPathTicketFields, params, desk.DefaultPaginationOptions())
}

// Create implements desk.TicketFieldsClient.Create.
func (c *TicketFieldsClient) Create(ctx context.Context, request *desk.TicketFieldRequest) (*desk.TicketField, error) {
	body := map[string]interface{}{"ticket_field": request}

	resp, err := c.httpClient.Post(ctx, constants.APIPathTicketFields, body)
	if err != nil {
		return nil, fmt.Errorf("creating ticket field: %w", err)
	}

	field, err := desk.UnmarshalEnvelope[desk.TicketField](resp.Body, "ticket_field")
	if err != nil {
		return nil, err
	}

	return &field, nil
}

// Get implements desk.TicketFieldsClient.Get.
func (c *TicketFieldsClient) Get(ctx context.Context, id int64) (*desk.TicketField, error) {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", id)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ticket field: %w", err)
	}

	field, err := desk.UnmarshalEnvelope[desk.TicketField](resp.Body, "ticket_field")
	if err != nil {
		return nil, err
	}

	return &field, nil
}

// Update implements desk.TicketFieldsClient.Update.
func (c *TicketFieldsClient) Update(ctx context.Context, id int64, request *desk.TicketFieldRequest) (*desk.TicketField, error) {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", id)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"ticket_field": request}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating ticket field: %w", err)
	}

	field, err := desk.UnmarshalEnvelope[desk.TicketField](resp.Body, "ticket_field")
	if err != nil {
		return nil, err
	}

	return &field, nil
}

// Delete implements desk.TicketFieldsClient.Delete.
func (c *TicketFieldsClient) Delete(ctx context.Context, id int64) error {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", id)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting ticket field: %w", err)
	}

	return nil
}

// ListOptions implements desk.TicketFieldsClient.ListOptions.
func (c *TicketFieldsClient) ListOptions(ctx context.Context, fieldID int64) ([]desk.FieldOption, error) {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", fieldID, "options")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing ticket field options: %w", err)
	}

	return desk.UnmarshalEnvelope[[]desk.FieldOption](resp.Body, "custom_field_options")
}

// GetOption implements desk.TicketFieldsClient.GetOption.
func (c *TicketFieldsClient) GetOption(ctx context.Context, fieldID, optionID int64) (*desk.FieldOption, error) {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", fieldID, "options", optionID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ticket field option: %w", err)
	}

	option, err := desk.UnmarshalEnvelope[desk.FieldOption](resp.Body, "custom_field_option")
	if err != nil {
		return nil, err
	}

	return &option, nil
}

// UpsertOption implements desk.TicketFieldsClient.UpsertOption. An option
// with an ID updates that option; without one a new option is created.
func (c *TicketFieldsClient) UpsertOption(ctx context.Context, fieldID int64, option *desk.FieldOption) (*desk.FieldOption, error) {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", fieldID, "options")
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"custom_field_option": option}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("upserting ticket field option: %w", err)
	}

	result, err := desk.UnmarshalEnvelope[desk.FieldOption](resp.Body, "custom_field_option")
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteOption implements desk.TicketFieldsClient.DeleteOption.
func (c *TicketFieldsClient) DeleteOption(ctx context.Context, fieldID, optionID int64) error {
	path, err := desk.BuildPath("api", "v2", "ticket_fields", fieldID, "options", optionID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting ticket field option: %w", err)
	}

	return nil
}
