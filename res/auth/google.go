package auth

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleSignIn drives the sign-in code flow from a terminal session.
// Ref https://developers.google.com/identity/sign-in/web/server-side-flow
// The exchanged ID token is handed to the platform auth service, which
// validates it and answers with its own token pair.
type GoogleSignIn struct {
	config oauth2.Config
}

func NewGoogleSignIn(clientID, clientSecret, redirectURL string) *GoogleSignIn {
	return &GoogleSignIn{
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// AuthURL returns the URL the user opens in a browser to authorize.
func (g *GoogleSignIn) AuthURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode trades the pasted authorization code for a Google ID
// token.
func (g *GoogleSignIn) ExchangeCode(ctx context.Context, code string) (string, error) {
	tok, err := g.config.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	idToken, ok := tok.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("auth: authorization response carried no ID token")
	}
	return idToken, nil
}
