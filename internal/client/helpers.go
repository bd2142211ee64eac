package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

// listPage fetches one page of a list and unwraps the envelope under key.
// path may be a resource base path or an absolute next-page locator.
func listPage[T any](ctx context.Context, httpClient *http.Client, path, key string, params *desk.QueryParams) (*desk.ListResponse[T], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", key, err)
	}

	return desk.UnmarshalList[T](resp.Body, key)
}

// pageFetcher adapts a function to desk.PaginationClient. Clients that
// serve multiple list shapes use it to expose each one to the pagination
// helpers separately.
type pageFetcher[T any] func(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[T], error)

// ListWithPath implements desk.PaginationClient.
func (f pageFetcher[T]) ListWithPath(ctx context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[T], error) {
	return f(ctx, path, params)
}
