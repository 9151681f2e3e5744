package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bookline-admin/res/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with Google and obtain an API token pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		google := auth.NewGoogleSignIn(
			readRequiredEnvVar("AUTH_GOOGLE_CLIENT_ID"),
			readRequiredEnvVar("AUTH_GOOGLE_SECRET"),
			readOptionalEnvVar("AUTH_GOOGLE_REDIRECT_URL", "urn:ietf:wg:oauth:2.0:oob"),
		)

		fmt.Println("Open this URL in your browser and authorize access:")
		fmt.Println()
		fmt.Println("  " + google.AuthURL("state-admin-cli"))
		fmt.Println()
		fmt.Print("Paste the authorization code here: ")

		reader := bufio.NewReader(os.Stdin)
		code, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read authorization code: %w", err)
		}
		code = strings.TrimSpace(code)
		if code == "" {
			return fmt.Errorf("no authorization code provided")
		}

		idToken, err := google.ExchangeCode(cmd.Context(), code)
		if err != nil {
			return fmt.Errorf("failed to exchange authorization code: %w", err)
		}

		tokens := configTokens()
		if err := tokens.SignInWithGoogle(cmd.Context(), idToken); err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}

		accessToken, refreshToken := tokens.Tokens()
		fmt.Println()
		fmt.Println("Signed in. Export the token pair for subsequent commands:")
		fmt.Println()
		fmt.Printf("  export BOOKLINE_ACCESS_TOKEN=%s\n", accessToken)
		fmt.Printf("  export BOOKLINE_REFRESH_TOKEN=%s\n", refreshToken)
		return nil
	},
}
