package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetGuest = newOperation("GetGuest", `
query GetGuest($id: ID!) {
	guest(id: $id) { `+guestFields+` }
}`)

var opListGuests = newOperation("ListGuests", `
query ListGuests($limit: Int, $offset: Int) {
	guests(limit: $limit, offset: $offset) { `+guestFields+` }
}`)

var opCreateGuest = newOperation("CreateGuest", `
mutation CreateGuest($input: GuestInput!) {
	createGuest(input: $input) { `+guestFields+` }
}`)

var opUpdateGuest = newOperation("UpdateGuest", `
mutation UpdateGuest($id: ID!, $input: GuestInput!) {
	updateGuest(id: $id, input: $input) { `+guestFields+` }
}`)

var opDeleteGuest = newOperation("DeleteGuest", `
mutation DeleteGuest($id: ID!) {
	deleteGuest(id: $id)
}`)

func (c *Client) Guest(ctx context.Context, id string) (*model.Guest, error) {
	var resp struct {
		Guest *model.Guest `json:"guest"`
	}
	if err := c.do(ctx, opGetGuest, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Guest == nil {
		return nil, ErrNotFound
	}
	return resp.Guest, nil
}

func (c *Client) Guests(ctx context.Context, limit, offset *int) ([]model.Guest, error) {
	var resp struct {
		Guests []model.Guest `json:"guests"`
	}
	vars := map[string]interface{}{"limit": limit, "offset": offset}
	if err := c.do(ctx, opListGuests, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Guests, nil
}

func (c *Client) CreateGuest(ctx context.Context, input model.GuestInput) (*model.Guest, error) {
	var resp struct {
		Guest *model.Guest `json:"createGuest"`
	}
	if err := c.do(ctx, opCreateGuest, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Guest, nil
}

func (c *Client) UpdateGuest(ctx context.Context, id string, input model.GuestInput) (*model.Guest, error) {
	var resp struct {
		Guest *model.Guest `json:"updateGuest"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateGuest, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Guest, nil
}

func (c *Client) DeleteGuest(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteGuest, map[string]interface{}{"id": id}, nil)
}
