package planline

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetActivityHistory returns the audit history for an activity. History
// survives the activity's deletion.
func (c *Client) GetActivityHistory(ctx context.Context, name string) ([]AuditEntry, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/activities/"+name+"/history"), nil)
	if err != nil {
		return nil, err
	}

	var entries []AuditEntry
	if err := c.doJSON(req, http.StatusOK, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// QueryAuditLog queries the project audit log with filters and pagination.
func (c *Client) QueryAuditLog(ctx context.Context, opts ...AuditQueryOption) (*AuditPage, error) {
	options := defaultAuditQueryOptions()
	for _, opt := range opts {
		opt(options)
	}

	query := url.Values{}
	if options.action != "" {
		query.Set("action", options.action)
	}
	if options.agentID != "" {
		query.Set("agent", options.agentID)
	}
	query.Set("page", strconv.Itoa(options.page))
	query.Set("per_page", strconv.Itoa(options.perPage))

	req, err := c.newRequest(ctx, http.MethodGet, c.projectPath("/audit?"+query.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var page AuditPage
	if err := c.doJSON(req, http.StatusOK, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
