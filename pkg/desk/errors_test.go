package desk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpwire-io/deskapi/pkg/desk"
)

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantType    string
		wantMessage string
	}{
		{
			name:        "structured error",
			status:      404,
			body:        `{"error": "RecordNotFound", "description": "Not found"}`,
			wantType:    "RecordNotFound",
			wantMessage: "RecordNotFound: Not found (status 404)",
		},
		{
			name:        "error without description",
			status:      429,
			body:        `{"error": "TooManyRequests"}`,
			wantType:    "TooManyRequests",
			wantMessage: "TooManyRequests (status 429)",
		},
		{
			name:        "non-JSON body",
			status:      502,
			body:        "<html>Bad Gateway</html>",
			wantMessage: "API error (status 502)",
		},
		{
			name:        "empty body",
			status:      500,
			body:        "",
			wantMessage: "API error (status 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := desk.ParseAPIError(tt.status, []byte(tt.body))
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantType, apiErr.Type)
			assert.Equal(t, tt.wantMessage, apiErr.Error())
			assert.Equal(t, []byte(tt.body), apiErr.Body)
		})
	}
}

func TestParseAPIError_ValidationDetails(t *testing.T) {
	body := `{
		"error": "RecordInvalid",
		"description": "Record validation errors",
		"details": {
			"title": [{"description": "Title: is too short", "type": "blank"}]
		}
	}`

	apiErr := desk.ParseAPIError(422, []byte(body))
	require.Contains(t, apiErr.Details, "title")
	require.Len(t, apiErr.Details["title"], 1)
	assert.Equal(t, "Title: is too short", apiErr.Details["title"][0].Description)
	assert.Equal(t, "blank", apiErr.Details["title"][0].Type)
}

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", desk.ParseAPIError(404, nil), desk.IsNotFound, true},
		{"unauthorized", desk.ParseAPIError(401, nil), desk.IsUnauthorized, true},
		{"forbidden", desk.ParseAPIError(403, nil), desk.IsForbidden, true},
		{"rate limited", desk.ParseAPIError(429, nil), desk.IsRateLimited, true},
		{"wrong status", desk.ParseAPIError(500, nil), desk.IsNotFound, false},
		{"not an api error", errors.New("boom"), desk.IsNotFound, false},
		{"wrapped api error", fmt.Errorf("listing tags: %w", desk.ParseAPIError(404, nil)), desk.IsNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	inner := errors.New("connection refused")
	transportErr := &desk.TransportError{URL: "https://example.zendesk.com/api/v2/tags", Err: inner}
	assert.ErrorIs(t, transportErr, inner)
	assert.Contains(t, transportErr.Error(), "connection refused")

	decodeErr := &desk.DecodeError{Key: "tags", Err: desk.ErrMissingEnvelopeKey}
	assert.ErrorIs(t, decodeErr, desk.ErrMissingEnvelopeKey)
	assert.Contains(t, decodeErr.Error(), `"tags"`)

	pageErr := &desk.PaginationError{PagesFetched: 3, Err: transportErr}
	assert.ErrorIs(t, pageErr, inner)
	assert.Contains(t, pageErr.Error(), "after 3 page(s)")
}
