package remix

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"remix-gallery-server/modules/gallery"
)

// recordingQueue remembers enqueued job ids
type recordingQueue struct {
	jobIDs []string
	err    error
}

func (q *recordingQueue) Enqueue(jobID string) error {
	if q.err != nil {
		return q.err
	}
	q.jobIDs = append(q.jobIDs, jobID)
	return nil
}

func newRemixRouter(store *gallery.Store, registry *Registry, queue JobQueue) *mux.Router {
	r := mux.NewRouter()
	NewHandler(store, registry, queue).RegisterRoutes(r)
	return r
}

func TestSubmitRemix(t *testing.T) {
	store := gallery.NewStore()
	registry := NewRegistry()
	queue := &recordingQueue{}
	router := newRemixRouter(store, registry, queue)

	body := `{"title":"Beach","description":"A dog on the beach","count":2,"quality":"quality"}`
	req := httptest.NewRequest(http.MethodPost, "/api/remix", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusAccepted, w.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["jobId"] == "" {
		t.Fatal("response carries no jobId")
	}
	if resp["status"] != string(StatusPending) {
		t.Errorf("status = %q, want pending", resp["status"])
	}
	if len(queue.jobIDs) != 1 || queue.jobIDs[0] != resp["jobId"] {
		t.Errorf("queue got %v, want [%s]", queue.jobIDs, resp["jobId"])
	}

	job, ok := registry.Get(resp["jobId"])
	if !ok {
		t.Fatal("job not registered")
	}
	if job.Request.Count != 2 || job.Request.Quality != QualityHigh {
		t.Errorf("stored request = %+v", job.Request)
	}
	if job.Request.AspectRatio != "16:9" {
		t.Errorf("aspect ratio not defaulted: %q", job.Request.AspectRatio)
	}
}

func TestSubmitRemixInheritsSourceVideo(t *testing.T) {
	store := gallery.NewStore()
	store.Append(gallery.VideoRecord{ID: "vid-1", Title: "Beach", Description: "A dog on the beach"})
	registry := NewRegistry()
	router := newRemixRouter(store, registry, &recordingQueue{})

	body := `{"videoId":"vid-1","instruction":"add a kite","maskActive":true,"count":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/remix", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	job, _ := registry.Get(resp["jobId"])
	if job.Request.Title != "Beach" {
		t.Errorf("title = %q, want inherited Beach", job.Request.Title)
	}
	if job.Request.Description != "A dog on the beach" {
		t.Errorf("description = %q, want inherited", job.Request.Description)
	}
}

func TestSubmitRemixValidation(t *testing.T) {
	store := gallery.NewStore()
	registry := NewRegistry()
	router := newRemixRouter(store, registry, &recordingQueue{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"missing description", `{"title":"Beach"}`, http.StatusBadRequest},
		{"unknown source video", `{"videoId":"nope","description":"x"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/remix", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestSubmitRemixQueueFailure(t *testing.T) {
	store := gallery.NewStore()
	registry := NewRegistry()
	router := newRemixRouter(store, registry, &recordingQueue{err: errors.New("redis down")})

	body := `{"description":"waves"}`
	req := httptest.NewRequest(http.MethodPost, "/api/remix", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestGetJob(t *testing.T) {
	store := gallery.NewStore()
	registry := NewRegistry()
	router := newRemixRouter(store, registry, &recordingQueue{})

	job := registry.Create(Request{Title: "Beach", Description: "waves", Options: Options{Count: 1, Quality: QualityFast, Duration: DurationDefault, AspectRatio: "16:9"}})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+job.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var got Job
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode job: %v", err)
	}
	if got.ID != job.ID || got.Status != StatusPending {
		t.Errorf("job = %+v", got)
	}
}

func TestGetJobNotFound(t *testing.T) {
	router := newRemixRouter(gallery.NewStore(), NewRegistry(), &recordingQueue{})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
