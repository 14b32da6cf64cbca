package planline

import (
	"context"
	"net/http"
	"net/url"
)

// Validate checks the network for cycles and isolated activities.
func (c *Client) Validate(ctx context.Context) (*ValidationReport, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/validate"), nil)
	if err != nil {
		return nil, err
	}

	var report ValidationReport
	if err := c.doJSON(req, http.StatusOK, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Isolated lists activities with no meaningful connection to the network.
func (c *Client) Isolated(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/isolated"), nil)
	if err != nil {
		return nil, err
	}

	var isolated []string
	if err := c.doJSON(req, http.StatusOK, &isolated); err != nil {
		return nil, err
	}
	return isolated, nil
}

// Cycles lists every simple cycle in the network.
func (c *Client) Cycles(ctx context.Context) ([][]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/cycles"), nil)
	if err != nil {
		return nil, err
	}

	var cycles [][]string
	if err := c.doJSON(req, http.StatusOK, &cycles); err != nil {
		return nil, err
	}
	return cycles, nil
}

// Paths enumerates every simple path between two activities.
func (c *Client) Paths(ctx context.Context, from, to string) ([]Path, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/paths?"+query.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var paths []Path
	if err := c.doJSON(req, http.StatusOK, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// Solve computes the CPM schedule of the network between start and end.
func (c *Client) Solve(ctx context.Context, start, end string) (*SolveResult, error) {
	body := solveRequest{Start: start, End: end}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.projectPath("/solve"), body)
	if err != nil {
		return nil, err
	}

	var solved SolveResult
	if err := c.doJSON(req, http.StatusOK, &solved); err != nil {
		return nil, err
	}
	return &solved, nil
}
