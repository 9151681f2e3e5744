package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookline-admin/res/model"
)

var reservationStatusFlag string

var reservationsCmd = &cobra.Command{
	Use:   "reservations",
	Short: "List reservations of your business",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := configTokens()

		identity, err := configSession(tokens).Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}

		filters := model.ReservationFilters{}
		if reservationStatusFlag != "" {
			status := model.ReservationStatus(reservationStatusFlag)
			filters.Status = &status
		}

		reservations, err := configGraphQL(tokens).Reservations(cmd.Context(), identity.BusinessID, filters)
		if err != nil {
			return fmt.Errorf("failed to list reservations: %w", err)
		}

		if len(reservations) == 0 {
			fmt.Println("No reservations.")
			return nil
		}
		for _, r := range reservations {
			fmt.Printf("%-24s %-11s %s → %s  %s %s (party of %d)\n",
				r.ID, r.Status, r.CheckIn, r.CheckOut, r.Guest.FirstName, r.Guest.LastName, r.PartySize)
		}
		return nil
	},
}

func init() {
	reservationsCmd.Flags().StringVar(&reservationStatusFlag, "status", "", "filter by reservation status (e.g. CONFIRMED)")
}
