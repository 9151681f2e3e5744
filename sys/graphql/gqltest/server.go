package gqltest

import (
	"encoding/json"
	"net/http"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	graphqlws "github.com/graph-gophers/graphql-transport-ws/graphqlws"

	gql "bookline-admin/sys/graphql"
	"bookline-admin/sys/http/middleware"
)

// SessionIdentity is what the sandbox's session endpoint hands back to
// any caller presenting a bearer token.
type SessionIdentity struct {
	BusinessType string `json:"businessType"`
	BusinessID   string `json:"businessId"`
}

// NewHandler builds the sandbox HTTP surface: "/api" speaks GraphQL
// over POST and over the graphql-ws websocket subprotocol, and
// "/auth/session" resolves the caller to the given identity. The
// schema is parsed from the same embedded source the client validates
// its operation documents against, so the two cannot drift apart.
func NewHandler(store *Store, identity SessionIdentity) http.Handler {
	schema := graphql.MustParseSchema(gql.SchemaSource(), NewRoot(store), graphql.UseFieldResolvers())

	mux := http.NewServeMux()
	mux.Handle("/api", graphqlws.NewHandlerFunc(schema, &relay.Handler{Schema: schema}))
	mux.HandleFunc("/auth/session", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(identity)
	})

	return middleware.CORS(mux)
}
