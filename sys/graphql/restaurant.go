package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetRestaurant = newOperation("GetRestaurant", `
query GetRestaurant($id: ID!) {
	restaurant(id: $id) { `+restaurantFields+` }
}`)

var opListRestaurants = newOperation("ListRestaurants", `
query ListRestaurants($limit: Int, $offset: Int) {
	restaurants(limit: $limit, offset: $offset) {
		id name rating { `+ratingFields+` }
	}
}`)

var opCreateRestaurant = newOperation("CreateRestaurant", `
mutation CreateRestaurant($input: RestaurantInput!) {
	createRestaurant(input: $input) { `+restaurantFields+` }
}`)

var opUpdateRestaurant = newOperation("UpdateRestaurant", `
mutation UpdateRestaurant($id: ID!, $input: RestaurantInput!) {
	updateRestaurant(id: $id, input: $input) { `+restaurantFields+` }
}`)

var opDeleteRestaurant = newOperation("DeleteRestaurant", `
mutation DeleteRestaurant($id: ID!) {
	deleteRestaurant(id: $id)
}`)

var opGetRestaurantPeriods = newOperation("GetRestaurantOpeningPeriods", `
query GetRestaurantOpeningPeriods($id: ID!) {
	restaurant(id: $id) { id openingPeriods { `+openingPeriodFields+` } }
}`)

var opReplaceRestaurantPeriods = newOperation("ReplaceRestaurantOpeningPeriods", `
mutation ReplaceRestaurantOpeningPeriods($id: ID!, $input: RestaurantInput!) {
	updateRestaurant(id: $id, input: $input) { id openingPeriods { `+openingPeriodFields+` } }
}`)

func (c *Client) Restaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	var resp struct {
		Restaurant *model.Restaurant `json:"restaurant"`
	}
	if err := c.do(ctx, opGetRestaurant, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Restaurant == nil {
		return nil, ErrNotFound
	}
	return resp.Restaurant, nil
}

func (c *Client) Restaurants(ctx context.Context, limit, offset *int) ([]model.Restaurant, error) {
	var resp struct {
		Restaurants []model.Restaurant `json:"restaurants"`
	}
	vars := map[string]interface{}{"limit": limit, "offset": offset}
	if err := c.do(ctx, opListRestaurants, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurants, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, input model.RestaurantInput) (*model.Restaurant, error) {
	var resp struct {
		Restaurant *model.Restaurant `json:"createRestaurant"`
	}
	if err := c.do(ctx, opCreateRestaurant, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurant, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id string, input model.RestaurantInput) (*model.Restaurant, error) {
	var resp struct {
		Restaurant *model.Restaurant `json:"updateRestaurant"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateRestaurant, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Restaurant, nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteRestaurant, map[string]interface{}{"id": id}, nil)
}

func (c *Client) restaurantOpeningPeriods(ctx context.Context, id string) ([]model.OpeningPeriod, error) {
	var resp struct {
		Restaurant *struct {
			OpeningPeriods []model.OpeningPeriod `json:"openingPeriods"`
		} `json:"restaurant"`
	}
	if err := c.do(ctx, opGetRestaurantPeriods, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Restaurant == nil {
		return nil, ErrNotFound
	}
	return resp.Restaurant.OpeningPeriods, nil
}

func (c *Client) replaceRestaurantOpeningPeriods(ctx context.Context, id string, periods []model.OpeningPeriodInput) ([]model.OpeningPeriod, error) {
	var resp struct {
		Restaurant *struct {
			OpeningPeriods []model.OpeningPeriod `json:"openingPeriods"`
		} `json:"updateRestaurant"`
	}
	if periods == nil {
		periods = []model.OpeningPeriodInput{}
	}
	vars := map[string]interface{}{
		"id":    id,
		"input": map[string]interface{}{"openingPeriods": periods},
	}
	if err := c.do(ctx, opReplaceRestaurantPeriods, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Restaurant == nil {
		return nil, ErrNotFound
	}
	return resp.Restaurant.OpeningPeriods, nil
}
