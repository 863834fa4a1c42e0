package host

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oortcore/simulator/scheduler"
)

func newTestHub() *Hub {
	return NewHub(log.New(&bytes.Buffer{}, "", 0), Defaults{})
}

func TestStartRunRejectsUnknownScenario(t *testing.T) {
	h := newTestHub()
	if _, err := h.StartRun(RunRequest{Scenario: "does-not-exist"}); err == nil {
		t.Fatalf("expected an error for an unknown scenario")
	}
}

func TestStartRunRegistersALookupableRun(t *testing.T) {
	h := newTestHub()
	id, err := h.StartRun(RunRequest{
		Scenario: "tutorial01",
		Seed:     1,
		Codes: []scheduler.Code{
			{Team: 0, Name: "builtin.guns"},
			{Team: 1, Name: "builtin.guns"},
		},
	})
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}
	if _, ok := h.Run(id); !ok {
		t.Fatalf("expected run %s to be registered", id)
	}
}

func TestHandleCreateRunOverHTTP(t *testing.T) {
	h := newTestHub()
	body, _ := json.Marshal(RunRequest{
		Scenario: "tutorial01",
		Seed:     2,
		Codes: []scheduler.Code{
			{Team: 0, Name: "builtin.guns"},
			{Team: 1, Name: "builtin.guns"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/runs", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		RunID string `json:"run_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.RunID == "" {
		t.Fatalf("expected a non-empty run id in the response")
	}
}

func TestHandleCreateRunRejectsBadScenarioOverHTTP(t *testing.T) {
	h := newTestHub()
	body, _ := json.Marshal(RunRequest{Scenario: "does-not-exist"})
	req := httptest.NewRequest(http.MethodPost, "/runs", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleHealthOK(t *testing.T) {
	h := newTestHub()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRunEndsAndDeregistersItself(t *testing.T) {
	h := newTestHub()
	id, err := h.StartRun(RunRequest{
		Scenario: "tutorial01",
		Seed:     7,
		Codes: []scheduler.Code{
			{Team: 0, Name: "builtin.guns"},
			{Team: 1, Name: "builtin.guns"},
		},
	})
	if err != nil {
		t.Fatalf("StartRun: %v", err)
	}

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := h.Run(id); !ok {
			return // deregistered once the tutorial finished, as expected
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected run %s to finish and deregister within the deadline", id)
}
