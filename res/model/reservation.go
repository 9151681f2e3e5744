package model

import "bookline-admin/sys/graphql/scalar"

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "PENDING"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationStatusCheckedOut ReservationStatus = "CHECKED_OUT"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
	ReservationStatusNoShow     ReservationStatus = "NO_SHOW"
)

type Reservation struct {
	ID         string            `json:"id"`
	BusinessID string            `json:"businessId"`
	Guest      Guest             `json:"guest"`
	RoomID     *string           `json:"roomId,omitempty"`
	Status     ReservationStatus `json:"status"`
	CheckIn    scalar.Date       `json:"checkIn"`
	CheckOut   scalar.Date       `json:"checkOut"`
	PartySize  int               `json:"partySize"`
	Notes      *string           `json:"notes,omitempty"`
}

type ReservationInput struct {
	BusinessID *string            `json:"businessId,omitempty"`
	GuestID    *string            `json:"guestId,omitempty"`
	RoomID     *string            `json:"roomId,omitempty"`
	Status     *ReservationStatus `json:"status,omitempty"`
	CheckIn    *scalar.Date       `json:"checkIn,omitempty"`
	CheckOut   *scalar.Date       `json:"checkOut,omitempty"`
	PartySize  *int               `json:"partySize,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
}

// ReservationFilters narrows list queries; nil fields are not sent.
type ReservationFilters struct {
	Status *ReservationStatus
	Limit  *int
	Offset *int
}
