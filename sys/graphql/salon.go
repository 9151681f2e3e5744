package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetSalon = newOperation("GetSalon", `
query GetSalon($id: ID!) {
	salon(id: $id) { `+salonFields+` }
}`)

var opListSalons = newOperation("ListSalons", `
query ListSalons($limit: Int, $offset: Int) {
	salons(limit: $limit, offset: $offset) {
		id name rating { `+ratingFields+` }
	}
}`)

var opCreateSalon = newOperation("CreateSalon", `
mutation CreateSalon($input: SalonInput!) {
	createSalon(input: $input) { `+salonFields+` }
}`)

var opUpdateSalon = newOperation("UpdateSalon", `
mutation UpdateSalon($id: ID!, $input: SalonInput!) {
	updateSalon(id: $id, input: $input) { `+salonFields+` }
}`)

var opDeleteSalon = newOperation("DeleteSalon", `
mutation DeleteSalon($id: ID!) {
	deleteSalon(id: $id)
}`)

var opGetSalonPeriods = newOperation("GetSalonOpeningPeriods", `
query GetSalonOpeningPeriods($id: ID!) {
	salon(id: $id) { id openingPeriods { `+openingPeriodFields+` } }
}`)

var opReplaceSalonPeriods = newOperation("ReplaceSalonOpeningPeriods", `
mutation ReplaceSalonOpeningPeriods($id: ID!, $input: SalonInput!) {
	updateSalon(id: $id, input: $input) { id openingPeriods { `+openingPeriodFields+` } }
}`)

func (c *Client) Salon(ctx context.Context, id string) (*model.Salon, error) {
	var resp struct {
		Salon *model.Salon `json:"salon"`
	}
	if err := c.do(ctx, opGetSalon, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Salon == nil {
		return nil, ErrNotFound
	}
	return resp.Salon, nil
}

func (c *Client) Salons(ctx context.Context, limit, offset *int) ([]model.Salon, error) {
	var resp struct {
		Salons []model.Salon `json:"salons"`
	}
	vars := map[string]interface{}{"limit": limit, "offset": offset}
	if err := c.do(ctx, opListSalons, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Salons, nil
}

func (c *Client) CreateSalon(ctx context.Context, input model.SalonInput) (*model.Salon, error) {
	var resp struct {
		Salon *model.Salon `json:"createSalon"`
	}
	if err := c.do(ctx, opCreateSalon, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Salon, nil
}

func (c *Client) UpdateSalon(ctx context.Context, id string, input model.SalonInput) (*model.Salon, error) {
	var resp struct {
		Salon *model.Salon `json:"updateSalon"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateSalon, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Salon, nil
}

func (c *Client) DeleteSalon(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteSalon, map[string]interface{}{"id": id}, nil)
}

func (c *Client) salonOpeningPeriods(ctx context.Context, id string) ([]model.OpeningPeriod, error) {
	var resp struct {
		Salon *struct {
			OpeningPeriods []model.OpeningPeriod `json:"openingPeriods"`
		} `json:"salon"`
	}
	if err := c.do(ctx, opGetSalonPeriods, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Salon == nil {
		return nil, ErrNotFound
	}
	return resp.Salon.OpeningPeriods, nil
}

func (c *Client) replaceSalonOpeningPeriods(ctx context.Context, id string, periods []model.OpeningPeriodInput) ([]model.OpeningPeriod, error) {
	var resp struct {
		Salon *struct {
			OpeningPeriods []model.OpeningPeriod `json:"openingPeriods"`
		} `json:"updateSalon"`
	}
	if periods == nil {
		periods = []model.OpeningPeriodInput{}
	}
	vars := map[string]interface{}{
		"id":    id,
		"input": map[string]interface{}{"openingPeriods": periods},
	}
	if err := c.do(ctx, opReplaceSalonPeriods, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Salon == nil {
		return nil, ErrNotFound
	}
	return resp.Salon.OpeningPeriods, nil
}
