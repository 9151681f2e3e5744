package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetService = newOperation("GetService", `
query GetService($id: ID!) {
	service(id: $id) { `+serviceFields+` }
}`)

var opListServices = newOperation("ListServices", `
query ListServices($salonId: ID!) {
	services(salonId: $salonId) { `+serviceFields+` }
}`)

var opCreateService = newOperation("CreateService", `
mutation CreateService($input: ServiceInput!) {
	createService(input: $input) { `+serviceFields+` }
}`)

var opUpdateService = newOperation("UpdateService", `
mutation UpdateService($id: ID!, $input: ServiceInput!) {
	updateService(id: $id, input: $input) { `+serviceFields+` }
}`)

var opDeleteService = newOperation("DeleteService", `
mutation DeleteService($id: ID!) {
	deleteService(id: $id)
}`)

func (c *Client) Service(ctx context.Context, id string) (*model.Service, error) {
	var resp struct {
		Service *model.Service `json:"service"`
	}
	if err := c.do(ctx, opGetService, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Service == nil {
		return nil, ErrNotFound
	}
	return resp.Service, nil
}

func (c *Client) Services(ctx context.Context, salonID string) ([]model.Service, error) {
	var resp struct {
		Services []model.Service `json:"services"`
	}
	if err := c.do(ctx, opListServices, map[string]interface{}{"salonId": salonID}, &resp); err != nil {
		return nil, err
	}
	return resp.Services, nil
}

func (c *Client) CreateService(ctx context.Context, input model.ServiceInput) (*model.Service, error) {
	var resp struct {
		Service *model.Service `json:"createService"`
	}
	if err := c.do(ctx, opCreateService, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Service, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, input model.ServiceInput) (*model.Service, error) {
	var resp struct {
		Service *model.Service `json:"updateService"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateService, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Service, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteService, map[string]interface{}{"id": id}, nil)
}
