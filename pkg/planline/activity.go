package planline

import (
	"context"
	"net/http"
)

// CreateActivity creates a new activity with the given name. Successors named
// via WithSuccessor are registered implicitly if missing.
func (c *Client) CreateActivity(ctx context.Context, name string, opts ...CreateActivityOption) (*Activity, error) {
	options := &createActivityOptions{}
	for _, opt := range opts {
		opt(options)
	}

	body := createActivityRequest{
		Name:       name,
		Label:      options.label,
		Successors: options.successors,
	}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.projectPath("/activities"), body)
	if err != nil {
		return nil, err
	}

	var activity Activity
	if err := c.doJSON(req, http.StatusCreated, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivity retrieves an activity with its outgoing edges.
func (c *Client) GetActivity(ctx context.Context, name string) (*ActivityDetail, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/activities/"+name), nil)
	if err != nil {
		return nil, err
	}

	var detail ActivityDetail
	if err := c.doJSON(req, http.StatusOK, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListActivities lists all activities in the project.
func (c *Client) ListActivities(ctx context.Context) ([]Activity, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/activities"), nil)
	if err != nil {
		return nil, err
	}

	var activities []Activity
	if err := c.doJSON(req, http.StatusOK, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// DeleteActivity removes an activity and every edge referencing it.
func (c *Client) DeleteActivity(ctx context.Context, name string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.projectPath("/activities/"+name), nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, http.StatusNoContent, nil)
}

// ListSuccessors lists the outgoing edges of an activity.
func (c *Client) ListSuccessors(ctx context.Context, name string) ([]Edge, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/activities/"+name+"/successors"), nil)
	if err != nil {
		return nil, err
	}

	var edges []Edge
	if err := c.doJSON(req, http.StatusOK, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}
