package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetHotel = newOperation("GetHotel", `
query GetHotel($id: ID!) {
	hotel(id: $id) { `+hotelFields+` }
}`)

var opListHotels = newOperation("ListHotels", `
query ListHotels($limit: Int, $offset: Int) {
	hotels(limit: $limit, offset: $offset) {
		id name stars rating { `+ratingFields+` }
	}
}`)

var opCreateHotel = newOperation("CreateHotel", `
mutation CreateHotel($input: HotelInput!) {
	createHotel(input: $input) { `+hotelFields+` }
}`)

var opUpdateHotel = newOperation("UpdateHotel", `
mutation UpdateHotel($id: ID!, $input: HotelInput!) {
	updateHotel(id: $id, input: $input) { `+hotelFields+` }
}`)

var opDeleteHotel = newOperation("DeleteHotel", `
mutation DeleteHotel($id: ID!) {
	deleteHotel(id: $id)
}`)

var opGetHotelPeriods = newOperation("GetHotelOpeningPeriods", `
query GetHotelOpeningPeriods($id: ID!) {
	hotel(id: $id) { id openingPeriods { `+openingPeriodFields+` } }
}`)

var opReplaceHotelPeriods = newOperation("ReplaceHotelOpeningPeriods", `
mutation ReplaceHotelOpeningPeriods($id: ID!, $input: HotelInput!) {
	updateHotel(id: $id, input: $input) { id openingPeriods { `+openingPeriodFields+` } }
}`)

func (c *Client) Hotel(ctx context.Context, id string) (*model.Hotel, error) {
	var resp struct {
		Hotel *model.Hotel `json:"hotel"`
	}
	if err := c.do(ctx, opGetHotel, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Hotel == nil {
		return nil, ErrNotFound
	}
	return resp.Hotel, nil
}

func (c *Client) Hotels(ctx context.Context, limit, offset *int) ([]model.Hotel, error) {
	var resp struct {
		Hotels []model.Hotel `json:"hotels"`
	}
	vars := map[string]interface{}{"limit": limit, "offset": offset}
	if err := c.do(ctx, opListHotels, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Hotels, nil
}

func (c *Client) CreateHotel(ctx context.Context, input model.HotelInput) (*model.Hotel, error) {
	var resp struct {
		Hotel *model.Hotel `json:"createHotel"`
	}
	if err := c.do(ctx, opCreateHotel, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Hotel, nil
}

func (c *Client) UpdateHotel(ctx context.Context, id string, input model.HotelInput) (*model.Hotel, error) {
	var resp struct {
		Hotel *model.Hotel `json:"updateHotel"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateHotel, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Hotel, nil
}

func (c *Client) DeleteHotel(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteHotel, map[string]interface{}{"id": id}, nil)
}

func (c *Client) hotelOpeningPeriods(ctx context.Context, id string) ([]model.OpeningPeriod, error) {
	var resp struct {
		Hotel *struct {
			OpeningPeriods []model.OpeningPeriod `json:"openingPeriods"`
		} `json:"hotel"`
	}
	if err := c.do(ctx, opGetHotelPeriods, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Hotel == nil {
		return nil, ErrNotFound
	}
	return resp.Hotel.OpeningPeriods, nil
}

func (c *Client) replaceHotelOpeningPeriods(ctx context.Context, id string, periods []model.OpeningPeriodInput) ([]model.OpeningPeriod, error) {
	var resp struct {
		Hotel *struct {
			OpeningPeriods []model.OpeningPeriod `json:"openingPeriods"`
		} `json:"updateHotel"`
	}
	// The input is built as a raw map so an empty collection still
	// serializes: replace-whole-collection semantics require sending
	// the field even when the new list has no elements.
	if periods == nil {
		periods = []model.OpeningPeriodInput{}
	}
	vars := map[string]interface{}{
		"id":    id,
		"input": map[string]interface{}{"openingPeriods": periods},
	}
	if err := c.do(ctx, opReplaceHotelPeriods, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Hotel == nil {
		return nil, ErrNotFound
	}
	return resp.Hotel.OpeningPeriods, nil
}
