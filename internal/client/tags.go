package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/helpwire-io/deskapi/internal/constants"
	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// TagsClient implements desk.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

// ListWithPath implements desk.PaginationClient for tags.
func (c *TagsClient) ListWithPath(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[desk.Tag], error) {
	return listPage[desk.Tag](ctx, c.httpClient, path, "tags", params)
}

// List implements desk.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, params *desk.QueryParams) (*desk.ListResponse[desk.Tag], error) {
	return c.ListWithPath(ctx, constants.APIPathTags, params)
}

// ListAll implements desk.TagsClient.ListAll.
func (c *TagsClient) ListAll(ctx context.Context, params *desk.QueryParams) ([]desk.Tag, error) {
	return desk.FetchAllPages(ctx, c, constants.APIPathTags, params, desk.DefaultPaginationOptions())
}

// Count implements desk.TagsClient.Count. The server refreshes the count
// asynchronously, so the value can lag recent tagging activity.
func (c *TagsClient) Count(ctx context.Context) (int, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathTags+"/count", nil)
	if err != nil {
		return 0, fmt.Errorf("counting tags: %w", err)
	}

	count, err := desk.UnmarshalEnvelope[struct {
		Value int `json:"value"`
	}](resp.Body, "count")
	if err != nil {
		return 0, err
	}

	return count.Value, nil
}

// Autocomplete implements desk.TagsClient.Autocomplete.
func (c *TagsClient) Autocomplete(ctx context.Context, prefix string) ([]desk.Tag, error) {
	query := url.Values{"name": []string{prefix}}

	resp, err := c.httpClient.Get(ctx, "/api/v2/autocomplete/tags", query)
	if err != nil {
		return nil, fmt.Errorf("autocompleting tags: %w", err)
	}

	return desk.UnmarshalEnvelope[[]desk.Tag](resp.Body, "tags")
}
