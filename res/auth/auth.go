package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// ErrNotAuthenticated is returned when no usable token is held and no
// refresh is possible. Callers treat it as "sign in again".
var ErrNotAuthenticated = errors.New("auth: not authenticated")

// TokenSource yields a bearer token for outgoing requests.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource for a fixed token, used by tests and by
// scripted invocations that already hold a token.
type StaticToken string

func (s StaticToken) AccessToken(ctx context.Context) (string, error) {
	return string(s), nil
}

type Config struct {
	// Endpoint is the base URL of the external auth service,
	// e.g. "https://api.bookline.example/auth".
	Endpoint string
	Logger   *log.Logger
	Timeout  time.Duration

	AccessToken  string
	RefreshToken string
}

// TokenStore holds the access/refresh token pair and refreshes the access
// token through the external auth endpoint when its claims say it is
// about to expire. The signing key stays server-side, so expiry is the
// only claim the client acts on.
type TokenStore struct {
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewTokenStore(cfg *Config) *TokenStore {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &TokenStore{
		endpoint:     cfg.Endpoint,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       cfg.Logger,
		accessToken:  cfg.AccessToken,
		refreshToken: cfg.RefreshToken,
	}
}

func (s *TokenStore) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && !tokenExpired(s.accessToken) {
		return s.accessToken, nil
	}

	if s.refreshToken == "" {
		return "", ErrNotAuthenticated
	}

	if err := s.refreshLocked(ctx); err != nil {
		return "", err
	}
	return s.accessToken, nil
}

// SetTokens replaces the held pair, e.g. after a sign-in.
func (s *TokenStore) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// Tokens returns the currently held pair so callers can persist it.
func (s *TokenStore) Tokens() (accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s *TokenStore) refreshLocked(ctx context.Context) error {
	payload := struct {
		RefreshToken string `json:"refreshToken"`
	}{RefreshToken: s.refreshToken}

	var refreshed tokenPairResponse
	if err := s.post(ctx, "/refresh", payload, &refreshed); err != nil {
		return err
	}
	if refreshed.AccessToken == "" {
		return errors.New("auth: refresh response missing access token")
	}

	s.accessToken = refreshed.AccessToken
	if refreshed.RefreshToken != "" {
		s.refreshToken = refreshed.RefreshToken
	}
	s.logger.Printf("Refreshed access token")
	return nil
}

// SignInWithGoogle trades a Google ID token for a platform token pair.
// The ID token is validated server-side.
func (s *TokenStore) SignInWithGoogle(ctx context.Context, idToken string) error {
	payload := struct {
		IDToken string `json:"idToken"`
	}{IDToken: idToken}

	var pair tokenPairResponse
	if err := s.post(ctx, "/google", payload, &pair); err != nil {
		return err
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return errors.New("auth: sign-in response missing tokens")
	}

	s.mu.Lock()
	s.accessToken = pair.AccessToken
	s.refreshToken = pair.RefreshToken
	s.mu.Unlock()
	return nil
}

func (s *TokenStore) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("auth: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("auth: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrNotAuthenticated
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Printf("Auth endpoint %s returned HTTP %d: %s", path, resp.StatusCode, snippet)
		return fmt.Errorf("auth: endpoint returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("auth: failed to decode response: %w", err)
	}
	return nil
}
