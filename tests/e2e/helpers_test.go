package e2e

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/planline/planline/internal/api"
	"github.com/planline/planline/internal/store"
	"github.com/planline/planline/pkg/planline"
)

// E2ETestSuite provides test infrastructure for end-to-end tests: a real
// store.Manager backed by temp-dir SQLite files behind a live HTTP server,
// exercised through the public SDK.
type E2ETestSuite struct {
	t       *testing.T
	server  *httptest.Server
	manager *store.Manager
	host    string
	port    int
}

// setupE2E creates a new E2E test suite with a running server and clean state.
func setupE2E(t *testing.T) *E2ETestSuite {
	t.Helper()

	tempDir := t.TempDir()

	manager, err := store.NewManager(filepath.Join(tempDir, "projects"))
	if err != nil {
		t.Fatalf("Failed to create database manager: %v", err)
	}

	router := api.NewRouter(manager)
	server := httptest.NewServer(router)

	// URL format is http://127.0.0.1:PORT
	parts := strings.Split(strings.TrimPrefix(server.URL, "http://"), ":")
	port, err := strconv.Atoi(parts[1])
	if err != nil {
		server.Close()
		manager.Close()
		t.Fatalf("Failed to parse server port: %v", err)
	}

	suite := &E2ETestSuite{
		t:       t,
		server:  server,
		manager: manager,
		host:    parts[0],
		port:    port,
	}
	t.Cleanup(suite.cleanup)
	return suite
}

// cleanup tears down the test suite.
func (s *E2ETestSuite) cleanup() {
	if s.server != nil {
		s.server.Close()
	}
	if s.manager != nil {
		s.manager.Close()
	}
}

// getClient creates an SDK client scoped to the given project and agent.
func (s *E2ETestSuite) getClient(project, agentID string) *planline.Client {
	s.t.Helper()

	c, err := planline.NewClient(
		planline.WithHost(s.host),
		planline.WithPort(s.port),
		planline.WithProject(project),
		planline.WithAgentID(agentID),
	)
	if err != nil {
		s.t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

// referenceEdges is the construction scheduling scenario used throughout the
// engine tests: six activities between a start and an end milestone, longest
// path start -> C -> E -> end with total duration 24.
var referenceEdges = []struct {
	From     string
	To       string
	Duration float64
}{
	{"start", "A", 5},
	{"start", "B", 7},
	{"start", "C", 6},
	{"A", "D", 3},
	{"A", "E", 9},
	{"B", "D", 1},
	{"B", "F", 4},
	{"C", "E", 13},
	{"C", "F", 6},
	{"D", "end", 8},
	{"E", "end", 5},
	{"F", "end", 11},
}

// buildReferenceNetwork loads the reference scenario over HTTP.
func (s *E2ETestSuite) buildReferenceNetwork(c *planline.Client) {
	s.t.Helper()

	for _, e := range referenceEdges {
		if _, err := c.AddEdge(context.Background(), e.From, e.To, e.Duration); err != nil {
			s.t.Fatalf("Failed to add edge %s -> %s: %v", e.From, e.To, err)
		}
	}
}
