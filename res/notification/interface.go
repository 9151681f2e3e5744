package notification

import (
	"context"

	"bookline-admin/res/model"
)

// NotificationService defines the interface for operational notifications
type NotificationService interface {
	// NotifyReservationChanged sends a notification when a reservation is created or changes status
	NotifyReservationChanged(ctx context.Context, reservation model.Reservation) error
	// NotifyScheduleChanged sends a notification when a business's opening periods are replaced
	NotifyScheduleChanged(ctx context.Context, businessID string, periods []model.OpeningPeriod) error
}
