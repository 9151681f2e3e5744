package graphql

import (
	"context"

	"bookline-admin/res/model"
)

var opViewer = newOperation("Viewer", `
query Viewer {
	viewer { id displayName email }
}`)

// Viewer returns the user the current token belongs to, or ErrNotFound
// for anonymous sessions.
func (c *Client) Viewer(ctx context.Context) (*model.User, error) {
	var resp struct {
		Viewer *model.User `json:"viewer"`
	}
	if err := c.do(ctx, opViewer, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Viewer == nil {
		return nil, ErrNotFound
	}
	return resp.Viewer, nil
}
