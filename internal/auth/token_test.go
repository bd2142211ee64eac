package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_Valid(t *testing.T) {
	tests := []struct {
		name  string
		token *Token
		want  bool
	}{
		{
			name:  "nil token",
			token: nil,
			want:  false,
		},
		{
			name:  "empty access token",
			token: &Token{},
			want:  false,
		},
		{
			name:  "no expiry",
			token: &Token{AccessToken: "tok"},
			want:  true,
		},
		{
			name: "expires well in the future",
			token: &Token{
				AccessToken: "tok",
				ExpiresAt:   time.Now().Add(1 * time.Hour),
			},
			want: true,
		},
		{
			name: "already expired",
			token: &Token{
				AccessToken: "tok",
				ExpiresAt:   time.Now().Add(-1 * time.Minute),
			},
			want: false,
		},
		{
			name: "inside the expiration buffer",
			token: &Token{
				AccessToken: "tok",
				ExpiresAt:   time.Now().Add(10 * time.Second),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.Valid())
		})
	}
}

func TestTokenStore(t *testing.T) {
	store := NewTokenStore()
	assert.Nil(t, store.Get())

	token := &Token{AccessToken: "tok"}
	store.Set(token)
	assert.Equal(t, token, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestTokenStore_Concurrent(t *testing.T) {
	store := NewTokenStore()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			store.Set(&Token{AccessToken: "tok"})
		}()

		go func() {
			defer wg.Done()
			_ = store.Get()
		}()
	}

	wg.Wait()
	assert.NotNil(t, store.Get())
}
