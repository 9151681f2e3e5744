package auth

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, handler http.Handler, accessToken, refreshToken string) *TokenStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewTokenStore(&Config{
		Endpoint:     srv.URL,
		Logger:       log.New(io.Discard, "", 0),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func TestTokenStore_FreshTokenSkipsRefresh(t *testing.T) {
	fresh := mintAccessToken(t, "u", time.Now().Add(time.Hour).Unix(), true)
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a fresh token")
	}), fresh, "refresh-1")

	token, err := store.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, token)
}

func TestTokenStore_RefreshesExpiredToken(t *testing.T) {
	expired := mintAccessToken(t, "u", time.Now().Add(-time.Hour).Unix(), true)
	renewed := mintAccessToken(t, "u", time.Now().Add(time.Hour).Unix(), true)

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refresh", r.URL.Path)

		var payload struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "refresh-1", payload.RefreshToken)

		json.NewEncoder(w).Encode(map[string]string{
			"accessToken":  renewed,
			"refreshToken": "refresh-2",
		})
	}), expired, "refresh-1")

	token, err := store.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, renewed, token)

	_, refreshToken := store.Tokens()
	assert.Equal(t, "refresh-2", refreshToken)
}

func TestTokenStore_NoTokens(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a refresh token")
	}), "", "")

	_, err := store.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestTokenStore_RefreshRejected(t *testing.T) {
	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), "", "stale-refresh")

	_, err := store.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestTokenStore_SignInWithGoogle(t *testing.T) {
	access := mintAccessToken(t, "u", time.Now().Add(time.Hour).Unix(), true)

	store := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/google", r.URL.Path)

		var payload struct {
			IDToken string `json:"idToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "google-id-token", payload.IDToken)

		json.NewEncoder(w).Encode(map[string]string{
			"accessToken":  access,
			"refreshToken": "refresh-1",
		})
	}), "", "")

	require.NoError(t, store.SignInWithGoogle(context.Background(), "google-id-token"))

	accessToken, refreshToken := store.Tokens()
	assert.Equal(t, access, accessToken)
	assert.Equal(t, "refresh-1", refreshToken)
}

func TestStaticToken(t *testing.T) {
	token, err := StaticToken("fixed").AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)
}
