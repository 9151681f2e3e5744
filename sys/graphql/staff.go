package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opGetStaffMember = newOperation("GetStaffMember", `
query GetStaffMember($id: ID!) {
	staffMember(id: $id) { `+staffFields+` }
}`)

var opListStaff = newOperation("ListStaff", `
query ListStaff($businessId: ID!) {
	staff(businessId: $businessId) { `+staffFields+` }
}`)

var opCreateStaff = newOperation("CreateStaff", `
mutation CreateStaff($input: StaffInput!) {
	createStaff(input: $input) { `+staffFields+` }
}`)

var opUpdateStaff = newOperation("UpdateStaff", `
mutation UpdateStaff($id: ID!, $input: StaffInput!) {
	updateStaff(id: $id, input: $input) { `+staffFields+` }
}`)

var opDeleteStaff = newOperation("DeleteStaff", `
mutation DeleteStaff($id: ID!) {
	deleteStaff(id: $id)
}`)

func (c *Client) StaffMember(ctx context.Context, id string) (*model.Staff, error) {
	var resp struct {
		StaffMember *model.Staff `json:"staffMember"`
	}
	if err := c.do(ctx, opGetStaffMember, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.StaffMember == nil {
		return nil, ErrNotFound
	}
	return resp.StaffMember, nil
}

func (c *Client) Staff(ctx context.Context, businessID string) ([]model.Staff, error) {
	var resp struct {
		Staff []model.Staff `json:"staff"`
	}
	if err := c.do(ctx, opListStaff, map[string]interface{}{"businessId": businessID}, &resp); err != nil {
		return nil, err
	}
	return resp.Staff, nil
}

func (c *Client) CreateStaff(ctx context.Context, input model.StaffInput) (*model.Staff, error) {
	var resp struct {
		Staff *model.Staff `json:"createStaff"`
	}
	if err := c.do(ctx, opCreateStaff, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	return resp.Staff, nil
}

func (c *Client) UpdateStaff(ctx context.Context, id string, input model.StaffInput) (*model.Staff, error) {
	var resp struct {
		Staff *model.Staff `json:"updateStaff"`
	}
	vars := map[string]interface{}{"id": id, "input": input}
	if err := c.do(ctx, opUpdateStaff, vars, &resp); err != nil {
		return nil, err
	}
	return resp.Staff, nil
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	return c.do(ctx, opDeleteStaff, map[string]interface{}{"id": id}, nil)
}
