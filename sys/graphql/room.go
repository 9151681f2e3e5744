package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetRoom = newOperation("GetRoom", `
query GetRoom($id: ID!) {
	room(id: $id) { `+roomFields+` }
}`)

var opListRooms = newOperation("ListRooms", `
query ListRooms($hotelId: ID!) {
	rooms(hotelId: $hotelId) { `+roomFields+` }
}`)

var opCreateRoom = newOperation("CreateRoom", `
mutation CreateRoom($input: RoomInput!) {
	createRoom(input: $input) { `+roomFields+` }
}`)

var opUpdateRoom = newOperation("UpdateRoom", `
mutation UpdateRoom($id: ID!, $input: RoomInput!) {
	updateRoom(id: $id, input: $input) { `+roomFields+` }
}`)

var opDeleteRoom = newOperation("DeleteRoom", `
mutation DeleteRoom($id: ID!) {
	deleteRoom(id: $id)
}`)

func (c *Client) Room(ctx context.Context, id string) (*model.Room, error) {
	var resp struct {
		Room *model.Room `json:"room"`
	}
	if err := c.do(ctx, opGetRoom, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Room == nil {
		return nil, ErrNotFound
	}
	return resp.Room, nil
}

func (c *Client) Rooms(ctx context.Context, hotelID string) ([]model.Room, error) {
	var resp struct {
		Rooms []model.Room `json:"rooms"`
	}
	if err := c.do(ctx, opListRooms, map[string]interface{}{"hotelId": hotelID}, &resp); err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

func (c *Client) CreateRoom(ctx context.Context, input model.RoomInput) (*model.Room, error) {
	var resp struct {
		Room *model.Room `json:"createRoom"`
	}
	if err := c.do(ctx, opCreateRoom, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

func (c *Client) UpdateRoom(ctx context.Context, id string, input model.RoomInput) (*model.Room, error) {
	var resp struct {
		Room *model.Room `json:"updateRoom"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateRoom, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteRoom, map[string]interface{}{"id": id}, nil)
}
