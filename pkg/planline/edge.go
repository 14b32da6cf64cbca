package planline

import (
	"context"
	"fmt"
	"net/http"
)

// AddEdge inserts a dependency edge from one activity to another, registering
// either endpoint if missing. Re-adding an existing (from, to) pair overwrites
// the duration; the returned EdgeResult reports whether that happened.
func (c *Client) AddEdge(ctx context.Context, from, to string, duration float64) (*EdgeResult, error) {
	body := addEdgeRequest{To: to, Duration: duration}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.projectPath("/activities/"+from+"/edges"), body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return nil, ErrServerNotRunning
		}
		return nil, fmt.Errorf("add edge failed: %w", err)
	}
	defer resp.Body.Close()

	// 201 for a new edge, 200 for a duration overwrite
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp)
	}

	var result EdgeResult
	if err := decodeBody(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveEdge deletes the (from, to) dependency edge.
func (c *Client) RemoveEdge(ctx context.Context, from, to string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.projectPath("/activities/"+from+"/edges/"+to), nil)
	if err != nil {
		return err
	}

	return c.doJSON(req, http.StatusNoContent, nil)
}

// ListEdges lists every edge in the project in insertion order.
func (c *Client) ListEdges(ctx context.Context) ([]Edge, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/edges"), nil)
	if err != nil {
		return nil, err
	}

	var edges []Edge
	if err := c.doJSON(req, http.StatusOK, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}
