package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account and its business",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := configTokens()

		user, err := configGraphQL(tokens).Viewer(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to look up account: %w", err)
		}

		identity, err := configSession(tokens).Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}

		fmt.Printf("%s <%s>\n", user.DisplayName, user.Email)
		fmt.Printf("administrates %s %s\n", identity.BusinessType, identity.BusinessID)
		return nil
	},
}
