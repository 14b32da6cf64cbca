package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/planline/planline/internal/api/middleware"
	"github.com/planline/planline/internal/api/response"
)

func TestRecovery_PanicReturns500(t *testing.T) {
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong!")
	})

	handler := middleware.Recovery(panicHandler)

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}

	var resp response.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected code 'INTERNAL_ERROR', got %q", resp.Error.Code)
	}
}

func TestAgentHeader_Extracted(t *testing.T) {
	var extractedAgent string

	captureHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		extractedAgent = middleware.GetAgentID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.AgentID(captureHandler)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(middleware.AgentHeader, "scheduler-bot")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if extractedAgent != "scheduler-bot" {
		t.Errorf("expected agent 'scheduler-bot', got %q", extractedAgent)
	}
}

func TestAgentHeader_DefaultsToAnonymous(t *testing.T) {
	var extractedAgent string

	captureHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		extractedAgent = middleware.GetAgentID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.AgentID(captureHandler)

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if extractedAgent != middleware.DefaultAgentID {
		t.Errorf("expected default agent %q, got %q", middleware.DefaultAgentID, extractedAgent)
	}
}

func TestLogging_CapturesStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	wrapped := middleware.Logging(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
}
