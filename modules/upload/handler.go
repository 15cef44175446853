package upload

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"remix-gallery-server/modules/common/storage"
	"remix-gallery-server/modules/common/utils"
	"remix-gallery-server/modules/gallery"
)

// Every uploaded record gets the same description; it doubles as the base
// prompt if the user remixes the upload without editing the text.
const uploadDescription = "A user-uploaded video."

const maxUploadBytes = 256 << 20

// Handler - accepts a locally-picked video file and turns it into a gallery record
type Handler struct {
	store *gallery.Store
	sink  storage.Sink
}

func NewHandler(store *gallery.Store, sink storage.Sink) *Handler {
	return &Handler{store: store, sink: sink}
}

// RegisterRoutes - attach the upload route to the router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/videos", h.UploadVideo).Methods("POST")
	log.Println("✅ Upload route registered: POST /api/videos")
}

// UploadVideo - POST /api/videos (multipart: video, optional title, optional poster)
func (h *Handler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing video file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read video file: "+err.Error())
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = titleFromFilename(header.Filename)
	}

	videoURL, err := h.sink.Save(data, videoMime(header.Filename, header.Header.Get("Content-Type")), "uploads")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store video: "+err.Error())
		return
	}

	rec := gallery.VideoRecord{
		ID:          uuid.New().String(),
		Title:       title,
		Description: uploadDescription,
		VideoURL:    videoURL,
		CreatedAt:   time.Now(),
	}

	// optional poster frame for the gallery card
	if posterURL, ok := h.savePoster(r); ok {
		rec.PosterURL = posterURL
	}

	h.store.Prepend(rec)
	log.Printf("📥 Uploaded %q as %q (%d bytes)", header.Filename, rec.Title, len(data))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

// savePoster - convert an optional poster image part to WebP and store it.
// A broken poster never fails the upload; the record just goes without one.
func (h *Handler) savePoster(r *http.Request) (string, bool) {
	file, _, err := r.FormFile("poster")
	if err != nil {
		return "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("⚠️  Failed to read poster: %v", err)
		return "", false
	}

	webpData, err := utils.EncodePosterWebP(data, 80.0)
	if err != nil {
		log.Printf("⚠️  Failed to convert poster: %v", err)
		return "", false
	}

	url, err := h.sink.Save(webpData, "image/webp", "posters")
	if err != nil {
		log.Printf("⚠️  Failed to store poster: %v", err)
		return "", false
	}
	return url, true
}

// titleFromFilename - "clip.mov" becomes "clip"
func titleFromFilename(name string) string {
	base := filepath.Base(name)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" {
		return "Untitled"
	}
	return title
}

// videoMime - content type from the upload header, falling back to the extension
func videoMime(filename, headerType string) string {
	if headerType != "" && headerType != "application/octet-stream" {
		return headerType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".m4v":
		return "video/x-m4v"
	default:
		return "video/mp4"
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
