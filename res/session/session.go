package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"bookline-admin/res/auth"
	"bookline-admin/res/model"
)

// ErrNotAssociated means the current session is not tied to a business
// this tool can administrate: the endpoint said unauthenticated, the
// business type was unrecognized, or the identifier was missing. Fatal
// for a run; there is no recovery path.
var ErrNotAssociated = errors.New("session: account is not associated with a business")

// Identity is the ambient identity of a run: which business the session
// belongs to. It is resolved once and handed to components explicitly.
type Identity struct {
	BusinessType model.BusinessType
	BusinessID   string
}

type Config struct {
	// Endpoint is the session lookup URL, e.g.
	// "https://api.bookline.example/auth/session".
	Endpoint string
	Logger   *log.Logger
	Tokens   auth.TokenSource
	Timeout  time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

type Resolver struct {
	endpoint   string
	logger     *log.Logger
	tokens     auth.TokenSource
	httpClient *http.Client
}

func NewResolver(cfg *Config) *Resolver {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Resolver{
		endpoint:   cfg.Endpoint,
		logger:     cfg.Logger,
		tokens:     cfg.Tokens,
		httpClient: httpClient,
	}
}

type sessionResponse struct {
	BusinessType string `json:"businessType"`
	BusinessID   string `json:"businessId"`
}

// Resolve performs the one session lookup of a run. Every failure mode —
// transport error aside — collapses into ErrNotAssociated; the detail is
// logged, not surfaced.
func (r *Resolver) Resolve(ctx context.Context) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("session: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if r.tokens != nil {
		token, err := r.tokens.AccessToken(ctx)
		if err != nil {
			r.logger.Printf("Session lookup has no usable token: %s", err)
			return nil, ErrNotAssociated
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session: lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Printf("Session endpoint returned HTTP %d", resp.StatusCode)
		return nil, ErrNotAssociated
	}

	var payload sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		r.logger.Printf("Session endpoint returned a malformed payload: %s", err)
		return nil, ErrNotAssociated
	}

	businessType := model.BusinessType(payload.BusinessType)
	if !businessType.Valid() {
		r.logger.Printf("Session endpoint returned unrecognized business type %q", payload.BusinessType)
		return nil, ErrNotAssociated
	}
	if payload.BusinessID == "" {
		r.logger.Printf("Session endpoint returned an empty business ID")
		return nil, ErrNotAssociated
	}

	return &Identity{
		BusinessType: businessType,
		BusinessID:   payload.BusinessID,
	}, nil
}
