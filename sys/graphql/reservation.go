package graphql

import (
	"context"
	"encoding/json"

	"bookline-admin/res/model"
)

var opGetReservation = newOperation("GetReservation", `
query GetReservation($id: ID!) {
	reservation(id: $id) { `+reservationFields+` }
}`)

var opListReservations = newOperation("ListReservations", `
query ListReservations($businessId: ID!, $status: ReservationStatus, $limit: Int, $offset: Int) {
	reservations(businessId: $businessId, status: $status, limit: $limit, offset: $offset) {
		`+reservationFields+`
	}
}`)

var opCreateReservation = newOperation("CreateReservation", `
mutation CreateReservation($input: ReservationInput!) {
	createReservation(input: $input) { `+reservationFields+` }
}`)

var opUpdateReservation = newOperation("UpdateReservation", `
mutation UpdateReservation($id: ID!, $input: ReservationInput!) {
	updateReservation(id: $id, input: $input) { `+reservationFields+` }
}`)

var opCancelReservation = newOperation("CancelReservation", `
mutation CancelReservation($id: ID!) {
	cancelReservation(id: $id) { `+reservationFields+` }
}`)

var opDeleteReservation = newOperation("DeleteReservation", `
mutation DeleteReservation($id: ID!) {
	deleteReservation(id: $id)
}`)

var opWatchReservations = newOperation("WatchReservations", `
subscription WatchReservations($businessId: ID!) {
	reservationChanged(businessId: $businessId) { `+reservationFields+` }
}`)

func (c *Client) Reservation(ctx context.Context, id string) (*model.Reservation, error) {
	var resp struct {
		Reservation *model.Reservation `json:"reservation"`
	}
	if err := c.do(ctx, opGetReservation, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Reservation == nil {
		return nil, ErrNotFound
	}
	return resp.Reservation, nil
}

func (c *Client) Reservations(ctx context.Context, businessID string, filters model.ReservationFilters) ([]model.Reservation, error) {
	var resp struct {
		Reservations []model.Reservation `json:"reservations"`
	}
	vars := map[string]interface{}{
		"businessId": businessID,
		"status":     filters.Status,
		"limit":      filters.Limit,
		"offset":     filters.Offset,
	}
	if err := c.do(ctx, opListReservations, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, input model.ReservationInput) (*model.Reservation, error) {
	var resp struct {
		Reservation *model.Reservation `json:"createReservation"`
	}
	if err := c.do(ctx, opCreateReservation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Reservation, nil
}

func (c *Client) UpdateReservation(ctx context.Context, id string, input model.ReservationInput) (*model.Reservation, error) {
	var resp struct {
		Reservation *model.Reservation `json:"updateReservation"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateReservation, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Reservation, nil
}

func (c *Client) CancelReservation(ctx context.Context, id string) (*model.Reservation, error) {
	var resp struct {
		Reservation *model.Reservation `json:"cancelReservation"`
	}
	if err := c.do(ctx, opCancelReservation, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	return resp.Reservation, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteReservation, map[string]interface{}{"id": id}, nil)
}

// WatchReservations streams every reservation change for a business until
// ctx is cancelled or the server completes the subscription.
func (c *Client) WatchReservations(ctx context.Context, businessID string) (<-chan model.Reservation, error) {
	events, err := c.subscribe(ctx, opWatchReservations, map[string]interface{}{"businessId": businessID})
	if err != nil {
		return nil, err
	}

	out := make(chan model.Reservation)
	go func() {
		defer close(out)
		for raw := range events {
			var payload struct {
				Reservation model.Reservation `json:"reservationChanged"`
			}
			if err := json.Unmarshal(raw, &payload); err != nil {
				c.logger.Printf("WatchReservations: malformed event: %s", err)
				continue
			}
			select {
			case out <- payload.Reservation:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
