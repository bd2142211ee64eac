package auth

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenManager(t *testing.T) {
	manager := NewStaticTokenManager("access-token")

	header, err := manager.GetAuthorizationHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-token", header)
}

func TestAPITokenManager(t *testing.T) {
	manager := NewAPITokenManager("agent@example.com", "secrettoken")

	header, err := manager.GetAuthorizationHeader(context.Background())
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("agent@example.com/token:secrettoken"))
	assert.Equal(t, want, header)
}
