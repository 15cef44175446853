package gallery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func newTestRouter(store *Store) *mux.Router {
	r := mux.NewRouter()
	NewHandler(store).RegisterRoutes(r)
	return r
}

func TestListVideos(t *testing.T) {
	store := NewStore()
	store.Append(rec("1", "Beach Sunset", "Waves on sand."))
	store.Append(rec("2", "Forest", "Tall pines."))
	router := newTestRouter(store)

	req := httptest.NewRequest("GET", "/api/videos", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body struct {
		Videos []VideoRecord `json:"videos"`
		Total  int           `json:"total"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 2 || len(body.Videos) != 2 {
		t.Errorf("expected 2 videos, got total=%d len=%d", body.Total, len(body.Videos))
	}
}

func TestListVideosFiltered(t *testing.T) {
	store := NewStore()
	store.Append(rec("1", "Beach Sunset", "Waves on sand."))
	store.Append(rec("2", "Forest", "Tall pines."))
	router := newTestRouter(store)

	req := httptest.NewRequest("GET", "/api/videos?q=beach", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var body struct {
		Videos []VideoRecord `json:"videos"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Videos) != 1 || body.Videos[0].ID != "1" {
		t.Errorf("expected only record 1, got %+v", body.Videos)
	}
}

func TestGetVideo(t *testing.T) {
	store := NewStore()
	store.Append(rec("abc", "Beach", "Sea."))
	router := newTestRouter(store)

	req := httptest.NewRequest("GET", "/api/videos/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got VideoRecord
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "abc" || got.Title != "Beach" {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestGetVideoNotFound(t *testing.T) {
	router := newTestRouter(NewStore())

	req := httptest.NewRequest("GET", "/api/videos/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}
