package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetTable = newOperation("GetTable", `
query GetTable($id: ID!) {
	table(id: $id) { `+tableFields+` }
}`)

var opListTables = newOperation("ListTables", `
query ListTables($restaurantId: ID!) {
	tables(restaurantId: $restaurantId) { `+tableFields+` }
}`)

var opCreateTable = newOperation("CreateTable", `
mutation CreateTable($input: TableInput!) {
	createTable(input: $input) { `+tableFields+` }
}`)

var opUpdateTable = newOperation("UpdateTable", `
mutation UpdateTable($id: ID!, $input: TableInput!) {
	updateTable(id: $id, input: $input) { `+tableFields+` }
}`)

var opDeleteTable = newOperation("DeleteTable", `
mutation DeleteTable($id: ID!) {
	deleteTable(id: $id)
}`)

func (c *Client) Table(ctx context.Context, id string) (*model.Table, error) {
	var resp struct {
		Table *model.Table `json:"table"`
	}
	if err := c.do(ctx, opGetTable, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Table == nil {
		return nil, ErrNotFound
	}
	return resp.Table, nil
}

func (c *Client) Tables(ctx context.Context, restaurantID string) ([]model.Table, error) {
	var resp struct {
		Tables []model.Table `json:"tables"`
	}
	if err := c.do(ctx, opListTables, map[string]interface{}{"restaurantId": restaurantID}, &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

func (c *Client) CreateTable(ctx context.Context, input model.TableInput) (*model.Table, error) {
	var resp struct {
		Table *model.Table `json:"createTable"`
	}
	if err := c.do(ctx, opCreateTable, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Table, nil
}

func (c *Client) UpdateTable(ctx context.Context, id string, input model.TableInput) (*model.Table, error) {
	var resp struct {
		Table *model.Table `json:"updateTable"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateTable, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Table, nil
}

func (c *Client) DeleteTable(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteTable, map[string]interface{}{"id": id}, nil)
}
