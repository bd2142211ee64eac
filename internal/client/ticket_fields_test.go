package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/helpwire-io/deskapi/internal/http"
	"github.com/helpwire-io/deskapi/pkg/desk"
)

func TestTicketFieldsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/ticket_fields", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]desk.TicketFieldRequest

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "text", body["ticket_field"].Type)
		assert.Equal(t, "Order number", body["ticket_field"].Title)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ticket_field": map[string]interface{}{
				"id":    int64(360001),
				"type":  "text",
				"title": "Order number",
			},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)

	field, err := client.Create(context.Background(), &desk.TicketFieldRequest{
		Type:  "text",
		Title: "Order number",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(360001), field.ID)
	assert.Equal(t, "text", field.Type)
}

func TestTicketFieldsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/ticket_fields/360001", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ticket_field": map[string]interface{}{
				"id":     int64(360001),
				"type":   "tagger",
				"title":  "Product area",
				"active": true,
				"custom_field_options": []map[string]interface{}{
					{"id": int64(1), "name": "Billing", "value": "billing"},
				},
			},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)

	field, err := client.Get(context.Background(), 360001)
	require.NoError(t, err)
	assert.Equal(t, "tagger", field.Type)
	assert.True(t, field.Active)
	require.Len(t, field.CustomFieldOptions, 1)
	assert.Equal(t, "billing", field.CustomFieldOptions[0].Value)
}

func TestTicketFieldsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/ticket_fields/360001", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var body map[string]map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, false, body["ticket_field"]["active"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ticket_field": map[string]interface{}{
				"id":     int64(360001),
				"type":   "text",
				"title":  "Order number",
				"active": false,
			},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)

	active := false
	field, err := client.Update(context.Background(), 360001, &desk.TicketFieldRequest{Active: &active})
	require.NoError(t, err)
	assert.False(t, field.Active)
}

func TestTicketFieldsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/ticket_fields/360001", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)

	err := client.Delete(context.Background(), 360001)
	require.NoError(t, err)
}

func TestTicketFieldsClient_Delete_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":       "RecordNotFound",
			"description": "Not found",
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)

	err := client.Delete(context.Background(), 999999)
	require.Error(t, err)
	assert.True(t, desk.IsNotFound(err))
}

func TestTicketFieldsClient_Options(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET":
			if r.URL.Path == "/api/v2/ticket_fields/360001/options/10" {
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"custom_field_option": map[string]interface{}{
						"id": int64(10), "name": "Billing", "value": "billing",
					},
				})

				return
			}

			assert.Equal(t, "/api/v2/ticket_fields/360001/options", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"custom_field_options": []map[string]interface{}{
					{"id": int64(10), "name": "Billing", "value": "billing"},
					{"id": int64(11), "name": "Shipping", "value": "shipping"},
				},
			})
		case "POST":
			assert.Equal(t, "/api/v2/ticket_fields/360001/options", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"custom_field_option": map[string]interface{}{
					"id": int64(12), "name": "Returns", "value": "returns",
				},
			})
		case "DELETE":
			assert.Equal(t, "/api/v2/ticket_fields/360001/options/12", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)
	ctx := context.Background()

	options, err := client.ListOptions(ctx, 360001)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "shipping", options[1].Value)

	option, err := client.GetOption(ctx, 360001, 10)
	require.NoError(t, err)
	assert.Equal(t, "Billing", option.Name)

	created, err := client.UpsertOption(ctx, 360001, &desk.FieldOption{Name: "Returns", Value: "returns"})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, int64(12), *created.ID)

	err = client.DeleteOption(ctx, 360001, 12)
	require.NoError(t, err)
}

func TestTicketFieldsClient_ListAll_CursorPagination(t *testing.T) {
	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page[after]") == "cursor-1" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"ticket_fields": []map[string]interface{}{
					{"id": int64(3), "type": "text", "title": "Three"},
				},
				"meta":  map[string]interface{}{"has_more": false},
				"links": map[string]interface{}{"next": nil},
			})

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"ticket_fields": []map[string]interface{}{
				{"id": int64(1), "type": "text", "title": "One"},
				{"id": int64(2), "type": "text", "title": "Two"},
			},
			"meta": map[string]interface{}{
				"has_more":     true,
				"after_cursor": "cursor-1",
			},
			"links": map[string]interface{}{
				"next": server.URL + "/api/v2/ticket_fields?page%5Bafter%5D=cursor-1",
			},
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	client := NewTicketFieldsClient(httpClient)

	all, err := client.ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Three", all[2].Title)
}
