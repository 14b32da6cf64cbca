package planline

import (
	"context"
	"net/http"
)

// DeclareEssential records that activity cannot start before required has
// finished, independent of the edges between them. Re-declaring an existing
// pair is idempotent.
func (c *Client) DeclareEssential(ctx context.Context, activity, required string) error {
	body := declareEssentialRequest{Required: required}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.projectPath("/activities/"+activity+"/essentials"), body)
	if err != nil {
		return err
	}

	return c.doJSON(req, http.StatusCreated, nil)
}

// RevokeEssential removes an essential constraint.
func (c *Client) RevokeEssential(ctx context.Context, activity, required string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.projectPath("/activities/"+activity+"/essentials/"+required), nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, http.StatusNoContent, nil)
}

// ListEssentials lists the essential requirements of one activity.
func (c *Client) ListEssentials(ctx context.Context, activity string) ([]EssentialConstraint, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/activities/"+activity+"/essentials"), nil)
	if err != nil {
		return nil, err
	}

	var constraints []EssentialConstraint
	if err := c.doJSON(req, http.StatusOK, &constraints); err != nil {
		return nil, err
	}
	return constraints, nil
}
