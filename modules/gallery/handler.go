package gallery

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler - read side of the gallery API
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes - attach gallery routes to the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/videos", h.ListVideos).Methods("GET")
	r.HandleFunc("/api/videos/{id}", h.GetVideo).Methods("GET")
	log.Println("✅ Gallery routes registered: GET /api/videos, GET /api/videos/{id}")
}

// ListVideos - GET /api/videos?q=  (empty q returns the full gallery)
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	records := h.store.Filter(q)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"videos": records,
		"total":  len(records),
	})
}

// GetVideo - GET /api/videos/{id}
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, ok := h.store.Get(id)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Video not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
