package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bookline-admin/res/auth"
	"bookline-admin/res/session"
	"bookline-admin/sys/graphql"
)

var logger = log.New(os.Stdout, "", log.LstdFlags|log.LUTC|log.Llongfile)

// CONFIGURATION CONVENTION:
// All environment variable configuration is centralized in this file
// (cmd/admin/root.go). This provides a single location to view all
// configuration requirements and ensures consistent handling of
// environment variables across the tool.
//
// REQUIRED Environment Variables (minimum to run):
// - BOOKLINE_API_URL: GraphQL endpoint, e.g. https://api.bookline.example/api
// - BOOKLINE_AUTH_URL: auth service base URL, e.g. https://api.bookline.example/auth
// - BOOKLINE_SESSION_URL: session lookup URL, e.g. https://api.bookline.example/auth/session
//
// OPTIONAL Environment Variables (with graceful degradation):
// - BOOKLINE_ACCESS_TOKEN: access token from a previous `admin login`
// - BOOKLINE_REFRESH_TOKEN: refresh token from a previous `admin login`
// - AUTH_GOOGLE_CLIENT_ID: Google OAuth client ID (required for `admin login`)
// - AUTH_GOOGLE_SECRET: Google OAuth client secret (required for `admin login`)
// - AUTH_GOOGLE_REDIRECT_URL: Google OAuth redirect URL (default: urn:ietf:wg:oauth:2.0:oob)
// - SLACK_WEBHOOK_URL: Slack webhook URL for `admin watch` notifications (optional)
// - BOOKLINE_TIMEOUT_SECONDS: timeout for API requests in seconds (default: 15)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrate a Bookline business from the terminal",
	Long: `admin manages the business your account is associated with on the
Bookline platform: its opening schedule, its reservations, and the
session you administrate it under.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(periodsCmd)
	rootCmd.AddCommand(reservationsCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadDotEnv loads a .env file in development.
// Try multiple locations: current dir, bookline-admin/, parent dir
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		err = godotenv.Load("bookline-admin/.env")
	}
	if err != nil {
		err = godotenv.Load("../.env")
	}
	if err != nil {
		logger.Printf("Note: .env file not found, using system environment variables")
	}
}

func readRequiredEnvVar(name string) string {
	val, ok := os.LookupEnv(name)
	if !ok {
		logger.Fatalf("Env variable not set: %s", name)
	}
	return val
}

func readOptionalEnvVar(name, fallback string) string {
	val, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return val
}

func requestTimeout() time.Duration {
	raw := readOptionalEnvVar("BOOKLINE_TIMEOUT_SECONDS", "15")
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		logger.Printf("Invalid BOOKLINE_TIMEOUT_SECONDS %q, using default of 15", raw)
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}

// configTokens builds the token store from whatever tokens the
// environment carries. Commands that need an authenticated session fail
// later with auth.ErrNotAuthenticated when both are absent.
func configTokens() *auth.TokenStore {
	return auth.NewTokenStore(&auth.Config{
		Endpoint:     readRequiredEnvVar("BOOKLINE_AUTH_URL"),
		Logger:       logger,
		Timeout:      requestTimeout(),
		AccessToken:  os.Getenv("BOOKLINE_ACCESS_TOKEN"),
		RefreshToken: os.Getenv("BOOKLINE_REFRESH_TOKEN"),
	})
}

func configSession(tokens *auth.TokenStore) *session.Resolver {
	return session.NewResolver(&session.Config{
		Endpoint: readRequiredEnvVar("BOOKLINE_SESSION_URL"),
		Logger:   logger,
		Tokens:   tokens,
		Timeout:  requestTimeout(),
	})
}

func configGraphQL(tokens *auth.TokenStore) *graphql.Client {
	return graphql.New(&graphql.Config{
		Endpoint: readRequiredEnvVar("BOOKLINE_API_URL"),
		Logger:   logger,
		Tokens:   tokens,
		Timeout:  requestTimeout(),
	})
}
