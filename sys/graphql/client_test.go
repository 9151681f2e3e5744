package graphql_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookline-admin/res/auth"
	"bookline-admin/sys/graphql"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *graphql.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return graphql.New(&graphql.Config{
		Endpoint: srv.URL,
		Logger:   log.New(io.Discard, "", 0),
		Tokens:   auth.StaticToken("test-token"),
	})
}

func TestClient_Viewer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req struct {
			OperationName string                 `json:"operationName"`
			Query         string                 `json:"query"`
			Variables     map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Viewer", req.OperationName)
		assert.Contains(t, req.Query, "viewer")

		io.WriteString(w, `{"data":{"viewer":{"id":"user-1","displayName":"Ana","email":"ana@example.com"}}}`)
	})

	user, err := client.Viewer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Ana", user.DisplayName)
}

func TestClient_GraphQLErrorsWin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Partial data alongside errors: the errors array wins.
		io.WriteString(w, `{"data":{"viewer":null},"errors":[{"message":"not signed in","path":["viewer"]}]}`)
	})

	_, err := client.Viewer(context.Background())
	require.Error(t, err)

	var list graphql.ErrorList
	require.ErrorAs(t, err, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "not signed in", list[0].Message)
	assert.Contains(t, err.Error(), "path: viewer")
}

func TestClient_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.Viewer(context.Background())
	require.Error(t, err)

	var reqErr *graphql.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	assert.Equal(t, "Viewer", reqErr.Operation)
}

func TestClient_NullEntityIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{"hotel":null}}`)
	})

	_, err := client.Hotel(context.Background(), "missing")
	assert.ErrorIs(t, err, graphql.ErrNotFound)
}

func TestClient_TokenFailureBlocksRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	client := graphql.New(&graphql.Config{
		Endpoint: srv.URL,
		Logger:   log.New(io.Discard, "", 0),
		Tokens: auth.NewTokenStore(&auth.Config{
			Endpoint: srv.URL,
			Logger:   log.New(io.Discard, "", 0),
		}),
	})

	_, err := client.Viewer(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, auth.ErrNotAuthenticated))
	assert.False(t, called)
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":`)
	})

	_, err := client.Viewer(context.Background())
	assert.Error(t, err)
}
