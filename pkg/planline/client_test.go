package planline

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	return &Client{
		baseURL: server.URL,
		agentID: "test-agent",
		project: "test-project",
		http:    server.Client(),
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ClientOption
		wantErr string
	}{
		{
			name:    "missing project",
			opts:    []ClientOption{WithAgentID("agent-1")},
			wantErr: "project is required",
		},
		{
			name:    "missing agent ID",
			opts:    []ClientOption{WithProject("test-project")},
			wantErr: "agent ID is required",
		},
		{
			name: "valid options",
			opts: []ClientOption{
				WithProject("test-project"),
				WithAgentID("agent-1"),
			},
			wantErr: "",
		},
		{
			name: "all options",
			opts: []ClientOption{
				WithProject("test-project"),
				WithAgentID("agent-1"),
				WithHost("example.com"),
				WithPort(8080),
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts...)
			if tt.wantErr != "" {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if client == nil {
				t.Error("expected non-nil client")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"healthy server", http.StatusOK, nil},
		{"unhealthy server", http.StatusServiceUnavailable, ErrServerUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/health" {
					t.Errorf("expected path /v1/health, got %s", r.URL.Path)
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(t, server)
			err := client.Health(context.Background())

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateActivity_SendsAgentHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Planline-Agent"); got != "test-agent" {
			t.Errorf("expected agent header 'test-agent', got %q", got)
		}
		if r.URL.Path != "/v1/projects/test-project/activities" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var body createActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body.Name != "excavate" {
			t.Errorf("expected name 'excavate', got %q", body.Name)
		}
		if len(body.Successors) != 1 || body.Successors[0].To != "pour" {
			t.Errorf("expected one successor 'pour', got %v", body.Successors)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Activity{Name: body.Name})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	activity, err := client.CreateActivity(context.Background(), "excavate",
		WithSuccessor("pour", 3),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.Name != "excavate" {
		t.Errorf("expected activity 'excavate', got %q", activity.Name)
	}
}

func TestAddEdge_OverwriteStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 signals a duration overwrite
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EdgeResult{From: "A", To: "B", Duration: 9, Overwrote: true})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	result, err := client.AddEdge(context.Background(), "A", "B", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Overwrote {
		t.Error("expected Overwrote=true")
	}
}

func TestSolve_DecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/projects/test-project/solve" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(SolveResult{
			RunID: "cp-ab12",
			Result: &ScheduleResult{
				Start:           "start",
				End:             "end",
				CriticalPath:    []string{"start", "C", "E", "end"},
				ProjectDuration: 24,
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	solved, err := client.Solve(context.Background(), "start", "end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if solved.RunID != "cp-ab12" {
		t.Errorf("expected run ID 'cp-ab12', got %q", solved.RunID)
	}
	if solved.Result.ProjectDuration != 24 {
		t.Errorf("expected duration 24, got %v", solved.Result.ProjectDuration)
	}
}

func TestSolve_MapsCyclicNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(apiErrorResponse{
			Error: apiError{
				Code:    "CYCLIC_NETWORK",
				Message: "Network contains dependency cycles",
				Context: map[string]interface{}{
					"cycles": []interface{}{"A -> B -> A"},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Solve(context.Background(), "A", "B")
	if !IsCyclicNetwork(err) {
		t.Fatalf("expected cyclic network error, got %v", err)
	}

	var sdkErr *Error
	if !errors.As(err, &sdkErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	cycles := extractStringSlice(sdkErr.Context, "cycles")
	if len(cycles) != 1 || cycles[0] != "A -> B -> A" {
		t.Errorf("expected cycles [A -> B -> A], got %v", cycles)
	}
}

func TestGetActivity_MapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(apiErrorResponse{
			Error: apiError{
				Code:    "UNKNOWN_ACTIVITY",
				Message: "Activity ghost not found in network",
				Context: map[string]interface{}{"name": "ghost"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetActivity(context.Background(), "ghost")
	if !IsUnknownActivity(err) {
		t.Fatalf("expected unknown activity error, got %v", err)
	}
}

func TestListProjects_ServerNotRunning(t *testing.T) {
	client, err := NewClient(
		WithProject("test-project"),
		WithAgentID("agent-1"),
		// Port 1 should refuse connections
		WithPort(1),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.ListProjects(context.Background())
	if !IsServerNotRunning(err) {
		t.Errorf("expected server not running error, got %v", err)
	}
}
