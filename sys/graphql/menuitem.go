package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetMenuItem = newOperation("GetMenuItem", `
query GetMenuItem($id: ID!) {
	menuItem(id: $id) { `+menuItemFields+` }
}`)

var opListMenuItems = newOperation("ListMenuItems", `
query ListMenuItems($restaurantId: ID!) {
	menuItems(restaurantId: $restaurantId) { `+menuItemFields+` }
}`)

var opCreateMenuItem = newOperation("CreateMenuItem", `
mutation CreateMenuItem($input: MenuItemInput!) {
	createMenuItem(input: $input) { `+menuItemFields+` }
}`)

var opUpdateMenuItem = newOperation("UpdateMenuItem", `
mutation UpdateMenuItem($id: ID!, $input: MenuItemInput!) {
	updateMenuItem(id: $id, input: $input) { `+menuItemFields+` }
}`)

var opDeleteMenuItem = newOperation("DeleteMenuItem", `
mutation DeleteMenuItem($id: ID!) {
	deleteMenuItem(id: $id)
}`)

func (c *Client) MenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	var resp struct {
		MenuItem *model.MenuItem `json:"menuItem"`
	}
	if err := c.do(ctx, opGetMenuItem, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.MenuItem == nil {
		return nil, ErrNotFound
	}
	return resp.MenuItem, nil
}

func (c *Client) MenuItems(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	var resp struct {
		MenuItems []model.MenuItem `json:"menuItems"`
	}
	if err := c.do(ctx, opListMenuItems, map[string]interface{}{"restaurantId": restaurantID}, &resp); err != nil {
		return nil, err
	}
	return resp.MenuItems, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, input model.MenuItemInput) (*model.MenuItem, error) {
	var resp struct {
		MenuItem *model.MenuItem `json:"createMenuItem"`
	}
	if err := c.do(ctx, opCreateMenuItem, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.MenuItem, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, input model.MenuItemInput) (*model.MenuItem, error) {
	var resp struct {
		MenuItem *model.MenuItem `json:"updateMenuItem"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateMenuItem, vars, &resp); err != nil {
		return nil, err
	}
	return resp.MenuItem, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteMenuItem, map[string]interface{}{"id": id}, nil)
}
