package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

func TestTagsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/tags", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))

		response := map[string]interface{}{
			"tags": []map[string]interface{}{
				{"name": "urgent", "count": 42},
				{"name": "billing", "count": 7},
			},
			"count":         int(2),
			"next_page":     nil,
			"previous_page": nil,
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTagsClient(httpClient)

	list, err := client.List(context.Background(), desk.NewQueryParams().WithPerPage(25))
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "urgent", list.Items[0].Name)
	assert.Equal(t, 42, list.Items[0].Count)
	assert.Equal(t, 2, list.Count)
	assert.Empty(t, list.NextLocator())
}

func TestTagsClient_ListAll_FollowsNextPage(t *testing.T) {
	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "2" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"tags":      []map[string]interface{}{{"name": "gamma", "count": 1}},
				"next_page": nil,
			})

			return
		}

		next := server.URL + "/api/v2/tags?page=2"
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"tags": []map[string]interface{}{
				{"name": "alpha", "count": 3},
				{"name": "beta", "count": 2},
			},
			"next_page": next,
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTagsClient(httpClient)

	all, err := client.ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "gamma", all[2].Name)
}

func TestTagsClient_ListAll_FailureDropsPartialResults(t *testing.T) {
	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":       "InternalError",
				"description": "something went wrong",
			})

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"tags":      []map[string]interface{}{{"name": "alpha", "count": 3}},
			"next_page": server.URL + "/api/v2/tags?page=2",
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTagsClient(httpClient)

	all, err := client.ListAll(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, all)

	var pageErr *desk.PaginationError

	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, 1, pageErr.PagesFetched)

	var apiErr *desk.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
}

func TestTagsClient_List_MissingEnvelopeKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"labels": []map[string]interface{}{{"name": "urgent"}},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTagsClient(httpClient)

	_, err := client.List(context.Background(), nil)
	require.Error(t, err)

	var decodeErr *desk.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "tags", decodeErr.Key)
	assert.True(t, errors.Is(err, desk.ErrMissingEnvelopeKey))
}

func TestTagsClient_Count(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/tags/count", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"count": map[string]interface{}{"value": 128, "refreshed_at": "2026-08-29T10:00:00Z"},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTagsClient(httpClient)

	count, err := client.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 128, count)
}

func TestTagsClient_Autocomplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/autocomplete/tags", r.URL.Path)
		assert.Equal(t, "bil", r.URL.Query().Get("name"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"tags": []map[string]interface{}{
				{"name": "billing", "count": 7},
				{"name": "bilingual", "count": 1},
			},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTagsClient(httpClient)

	tags, err := client.Autocomplete(context.Background(), "bil")
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "billing", tags[0].Name)
}
