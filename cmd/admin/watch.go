package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"bookline-admin/res/notification"
	"bookline-admin/res/notification/slack"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream reservation changes for your business",
	Long: `watch subscribes to the reservation feed of your business and prints
every change as it happens. With SLACK_WEBHOOK_URL set, each change is
also forwarded to Slack.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := configTokens()

		identity, err := configSession(tokens).Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		changes, err := configGraphQL(tokens).WatchReservations(ctx, identity.BusinessID)
		if err != nil {
			return fmt.Errorf("failed to subscribe: %w", err)
		}

		var notifier notification.NotificationService
		if webhookURL := os.Getenv("SLACK_WEBHOOK_URL"); webhookURL != "" {
			notifier = slack.New(webhookURL, 5*time.Second, logger)
		}

		fmt.Printf("Watching reservations for %s %s (Ctrl-C to stop)\n", identity.BusinessType, identity.BusinessID)
		for reservation := range changes {
			fmt.Printf("%s  %-24s %-11s %s → %s (party of %d)\n",
				time.Now().UTC().Format(time.RFC3339), reservation.ID, reservation.Status,
				reservation.CheckIn, reservation.CheckOut, reservation.PartySize)

			if notifier != nil {
				if err := notifier.NotifyReservationChanged(ctx, reservation); err != nil {
					logger.Printf("Failed to forward change to Slack: %v", err)
				}
			}
		}
		return nil
	},
}
