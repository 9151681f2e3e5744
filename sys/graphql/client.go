package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"bookline-admin/res/auth"
)

const requestTimeoutDefault = 15 * time.Second

// Config carries everything a Client needs. Logger and Endpoint are
// required; Tokens is optional (anonymous clients are allowed, the server
// decides what they may see).
type Config struct {
	Endpoint string
	Logger   *log.Logger
	Tokens   auth.TokenSource
	Timeout  time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client issues the named operations defined in this package against a
// single GraphQL endpoint. One POST per operation, no retries, no batching.
type Client struct {
	endpoint   string
	logger     *log.Logger
	tokens     auth.TokenSource
	httpClient *http.Client
}

func New(cfg *Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = requestTimeoutDefault
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		logger:     cfg.Logger,
		tokens:     cfg.Tokens,
		httpClient: httpClient,
	}
}

type graphqlRequest struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors ErrorList       `json:"errors"`
}

// do sends one operation and decodes the data payload into out.
// A present errors array wins over any partial data.
func (c *Client) do(ctx context.Context, op Operation, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{
		OperationName: op.Name,
		Query:         op.Document,
		Variables:     variables,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request for %s: %w", op.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", op.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if err := c.authorize(ctx, req.Header); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("operation %s failed: %w", op.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Printf("Operation %s returned HTTP %d: %s", op.Name, resp.StatusCode, snippet)
		return &RequestError{Operation: op.Name, StatusCode: resp.StatusCode}
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", op.Name, err)
	}

	if len(envelope.Errors) > 0 {
		c.logger.Printf("Operation %s failed: %s", op.Name, envelope.Errors.Error())
		return envelope.Errors
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data for %s: %w", op.Name, err)
		}
	}

	return nil
}

func (c *Client) authorize(ctx context.Context, header http.Header) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	return nil
}
