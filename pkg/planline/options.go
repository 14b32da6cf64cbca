package planline

import "time"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	host    string
	port    int
	project string
	agentID string
	timeout time.Duration
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		host:    "localhost",
		port:    7519,
		timeout: 30 * time.Second,
	}
}

// WithHost sets the server host.
func WithHost(host string) ClientOption {
	return func(c *clientConfig) {
		c.host = host
	}
}

// WithPort sets the server port.
func WithPort(port int) ClientOption {
	return func(c *clientConfig) {
		c.port = port
	}
}

// WithProject sets the project name.
func WithProject(project string) ClientOption {
	return func(c *clientConfig) {
		c.project = project
	}
}

// WithAgentID sets the agent ID recorded in the audit log.
func WithAgentID(agentID string) ClientOption {
	return func(c *clientConfig) {
		c.agentID = agentID
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// CreateActivityOption configures a CreateActivity call.
type CreateActivityOption func(*createActivityOptions)

// createActivityOptions holds options for creating an activity.
type createActivityOptions struct {
	label      *string
	successors []SuccessorSpec
}

// SuccessorSpec names one outgoing edge of a new activity.
type SuccessorSpec struct {
	To       string  `json:"to"`
	Duration float64 `json:"duration"`
}

// WithLabel sets the activity's display label.
func WithLabel(label string) CreateActivityOption {
	return func(o *createActivityOptions) {
		o.label = &label
	}
}

// WithSuccessor adds an outgoing edge to the new activity. The successor is
// registered implicitly if it does not exist yet.
func WithSuccessor(to string, duration float64) CreateActivityOption {
	return func(o *createActivityOptions) {
		o.successors = append(o.successors, SuccessorSpec{To: to, Duration: duration})
	}
}

// AuditQueryOption configures a QueryAuditLog call.
type AuditQueryOption func(*auditQueryOptions)

// auditQueryOptions holds options for querying the audit log.
type auditQueryOptions struct {
	action  string
	agentID string
	page    int
	perPage int
}

// defaultAuditQueryOptions returns the default audit query options.
func defaultAuditQueryOptions() *auditQueryOptions {
	return &auditQueryOptions{
		page:    1,
		perPage: 50,
	}
}

// WithAction filters audit entries by action.
func WithAction(action string) AuditQueryOption {
	return func(o *auditQueryOptions) {
		o.action = action
	}
}

// WithAgent filters audit entries by the agent that made the change.
func WithAgent(agentID string) AuditQueryOption {
	return func(o *auditQueryOptions) {
		o.agentID = agentID
	}
}

// WithPage sets the page number (1-indexed).
func WithPage(page int) AuditQueryOption {
	return func(o *auditQueryOptions) {
		o.page = page
	}
}

// WithPerPage sets the number of items per page.
func WithPerPage(perPage int) AuditQueryOption {
	return func(o *auditQueryOptions) {
		o.perPage = perPage
	}
}
