package remix

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"remix-gallery-server/modules/gallery"
)

// Handler - HTTP surface of the remix module
type Handler struct {
	store    *gallery.Store
	registry *Registry
	queue    JobQueue
}

// JobQueue - hands a job id to the worker queue
type JobQueue interface {
	Enqueue(jobID string) error
}

// NewHandler - wire the remix endpoints
func NewHandler(store *gallery.Store, registry *Registry, queue JobQueue) *Handler {
	return &Handler{
		store:    store,
		registry: registry,
		queue:    queue,
	}
}

// RegisterRoutes - mount the remix endpoints on the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/remix", h.SubmitRemix).Methods("POST")
	r.HandleFunc("/api/jobs/{jobId}", h.GetJob).Methods("GET")
}

// SubmitRemix handles remix submissions.
// The job is registered, pushed to the Redis queue, and processed by the
// worker; the response carries the job id to poll or subscribe on.
func (h *Handler) SubmitRemix(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// a remix of an existing gallery video inherits its title and
	// description unless the request overrides them
	if req.VideoID != "" {
		rec, ok := h.store.Get(req.VideoID)
		if !ok {
			writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			req.Title = rec.Title
		}
		if strings.TrimSpace(req.Description) == "" {
			req.Description = rec.Description
		}
	}

	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "Missing description")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		req.Title = "Untitled"
	}

	req.Normalize()

	job := h.registry.Create(req)
	if err := h.queue.Enqueue(job.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit job: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{
		"jobId":  job.ID,
		"status": string(job.Status),
	})
}

// GetJob returns the status of a remix job
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	job, ok := h.registry.Get(jobID)
	if !ok {
		writeError(w, http.StatusNotFound, "Job not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
