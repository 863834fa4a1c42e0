package host

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Mux builds the HTTP handler tree: POST /runs starts a scheduler run,
// GET /runs/{id}/stream attaches a websocket subscriber to it, and
// /health is a liveness probe. Generalizes the teacher's flat
// http.HandleFunc registration in main.go to a single assembled handler
// the binary wraps in logging/recovery middleware.
func (h *Hub) Mux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/runs", h.handleCreateRun)
	mux.HandleFunc("/runs/", h.handleRunStream)
	return mux
}

func (h *Hub) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Hub) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.StartRun(req)
	if err != nil {
		// StartRun fails only for an unknown scenario name, a
		// configuration mistake the caller can fix and retry. A team whose
		// code does not resolve still starts: its ships are marked crashed
		// and a LoadError event is recorded on the scheduler.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"run_id": id.String()})
}

// A run's stream endpoint is "/runs/{id}/stream".
const runStreamSuffix = "/stream"

func (h *Hub) handleRunStream(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if len(path) <= len("/runs/")+len(runStreamSuffix) || path[len(path)-len(runStreamSuffix):] != runStreamSuffix {
		http.NotFound(w, r)
		return
	}
	idStr := path[len("/runs/") : len(path)-len(runStreamSuffix)]

	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}

	h.HandleSnapshotStream(w, r, id)
}
